// Package jsonpath pulls values out of JSON documents using a small
// subset of JSONPath ($.a.b[0]['c']) evaluated with gjson.
package jsonpath

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrEmptyDocument = errors.New("empty JSON document")
	ErrEmptyPath     = errors.New("empty JSONPath expression")
	ErrNotFound      = errors.New("path not found")
)

// Extract returns the value at path as a string. Objects and arrays are
// returned as raw JSON; null is returned as "null".
func Extract(doc []byte, path string) (string, error) {
	if len(doc) == 0 {
		return "", ErrEmptyDocument
	}
	if path == "" {
		return "", ErrEmptyPath
	}
	if !gjson.ValidBytes(doc) {
		return "", fmt.Errorf("invalid JSON document")
	}

	result := gjson.GetBytes(doc, toGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ExtractAll evaluates every named path. It returns the values it found
// together with an error listing the ones it did not, sorted by name.
func ExtractAll(doc []byte, paths map[string]string) (map[string]string, error) {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(map[string]string, len(paths))
	var failures []string
	for _, name := range names {
		value, err := Extract(doc, paths[name])
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		values[name] = value
	}

	if len(failures) > 0 {
		return values, fmt.Errorf("extraction errors: %s", strings.Join(failures, "; "))
	}
	return values, nil
}

// toGjsonPath rewrites $.users[0]['name'] as users.0.name.
func toGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return "@this"
	}

	var b strings.Builder
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				b.WriteString(path[i:])
				return b.String()
			}
			segment := strings.Trim(path[i+1:i+end], `'"`)
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(segment)
			i += end
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
