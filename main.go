package main

import "github.com/diffjson/diffjson/cmd"

func main() {
	cmd.Execute()
}
