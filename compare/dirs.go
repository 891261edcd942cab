package compare

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/diffjson/diffjson/internal/document"
)

// ListPairs inspects both arguments and decides whether this is a
// single-file comparison or a directory sweep. URLs count as files.
// Mixing a file with a directory is an error, as is a path that does
// not exist.
func ListPairs(oldPath, newPath string) (Pairing, error) {
	oldIsDir, err := isDir(oldPath)
	if err != nil {
		return Pairing{}, err
	}
	newIsDir, err := isDir(newPath)
	if err != nil {
		return Pairing{}, err
	}
	if oldIsDir != newIsDir {
		return Pairing{}, fmt.Errorf("both arguments must be files or both must be directories")
	}
	if !oldIsDir {
		return Pairing{Pairs: [][2]string{{oldPath, newPath}}}, nil
	}

	oldNames, err := listRecognized(oldPath)
	if err != nil {
		return Pairing{}, err
	}
	newNames, err := listRecognized(newPath)
	if err != nil {
		return Pairing{}, err
	}

	pairing := Pairing{DirMode: true}
	for _, name := range sorted(oldNames.Intersect(newNames)) {
		pairing.Pairs = append(pairing.Pairs, [2]string{
			filepath.Join(oldPath, name),
			filepath.Join(newPath, name),
		})
	}
	pairing.Missing = sorted(oldNames.Difference(newNames))
	pairing.Extra = sorted(newNames.Difference(oldNames))
	return pairing, nil
}

func isDir(path string) (bool, error) {
	if document.IsURL(path) {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("path does not exist: %s", path)
	}
	return info.IsDir(), nil
}

// listRecognized collects the names of directory entries with a
// recognized document extension. Subdirectories are not descended
// into.
func listRecognized(dir string) (mapset.Set[string], error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %s", dir)
	}
	names := mapset.NewSet[string]()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if document.Recognized(entry.Name()) {
			names.Add(entry.Name())
		}
	}
	return names, nil
}

func sorted(s mapset.Set[string]) []string {
	names := s.ToSlice()
	sort.Strings(names)
	return names
}
