// Package document loads JSON and YAML documents into the dynamic
// tree form consumed by the diff engine, and provides absent-tolerant
// get/delete-by-path editing over that form.
//
// A loaded document is one of: map[string]interface{} (object),
// []interface{} (sequence), string, float64, bool, or nil.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"gopkg.in/yaml.v3"
)

// Extensions are the recognized document file extensions.
var Extensions = []string{".json", ".yaml", ".yml"}

var (
	// ErrUnreadable marks a document that could not be read at all.
	ErrUnreadable = errors.New("document unreadable")
	// ErrMalformed marks content that is not a well-formed document.
	ErrMalformed = errors.New("document malformed")
)

// Recognized reports whether name carries a recognized document
// extension.
func Recognized(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsURL reports whether path names a remote document.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Load reads and parses the document at path, which may name a local
// file or an http(s) URL.
func Load(path string) (interface{}, error) {
	var (
		data []byte
		err  error
	)
	if IsURL(path) {
		data, err = fetch(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Join(ErrUnreadable, err)
	}
	return Parse(data, path)
}

// Parse decodes data according to name's extension. JSON is the
// default for unrecognized extensions.
func Parse(data []byte, name string) (interface{}, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer contract.IgnoreClose(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func parseJSON(data []byte) (interface{}, error) {
	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content", ErrMalformed)
	}
	return doc, nil
}

func parseYAML(data []byte) (interface{}, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return normalize(doc), nil
}

// normalize rewrites YAML-specific decode results into the JSON tree
// types, so a .yaml document hashes identically to its .json
// counterpart under the diff engine: integers widen to float64 and
// timestamps collapse to RFC 3339 strings.
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		for k, item := range x {
			x[k] = normalize(item)
		}
		return x
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, item := range x {
			m[fmt.Sprint(k)] = normalize(item)
		}
		return m
	case []interface{}:
		for i, item := range x {
			x[i] = normalize(item)
		}
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case []byte:
		return string(x)
	case nil, bool, string, float64:
		return x
	default:
		return fmt.Sprint(x)
	}
}
