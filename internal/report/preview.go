package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pulumi/inflector"
)

// DefaultPreviewLimit caps one-line value previews.
const DefaultPreviewLimit = 100

// Preview serializes value to a compact single line of at most limit
// characters. Values whose serialized form fits are returned
// verbatim. Oversized objects summarize to their keys with values
// elided; oversized sequences summarize to an item count. Anything
// still over the limit is hard-truncated to exactly limit characters
// with a note counting the dropped characters.
func Preview(value interface{}, limit int) string {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	compact := marshalCompact(value)
	if len([]rune(compact)) <= limit {
		return compact
	}

	switch x := value.(type) {
	case map[string]interface{}:
		if s := objectKeysPreview(x); len([]rune(s)) <= limit {
			return s
		}
	case []interface{}:
		if s := fmt.Sprintf("[ (%d %s) ]", len(x), noun(len(x), "item")); len([]rune(s)) <= limit {
			return s
		}
	}

	runes := []rune(compact)
	dropped := len(runes) - limit
	return string(runes[:limit]) + fmt.Sprintf("...(%d more %s)", dropped, noun(dropped, "char"))
}

func marshalCompact(value interface{}) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}

func objectKeysPreview(obj map[string]interface{}) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		keys[i] = fmt.Sprintf("%q: ...", k)
	}
	return "{ " + strings.Join(keys, ", ") + " }"
}

// noun pluralizes word to agree with n.
func noun(n int, word string) string {
	if n == 1 {
		return inflector.Singularize(word)
	}
	return inflector.Pluralize(word)
}
