package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

// FormField is a single key/value pair of a multipart body.
type FormField struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// FormData is an ordered multipart/form-data container. Keys may repeat.
type FormData struct {
	fields []FormField
}

// NewFormData returns an empty container.
func NewFormData() *FormData {
	return &FormData{}
}

// Append adds a pair after all existing ones.
func (f *FormData) Append(key, value string) {
	f.fields = append(f.fields, FormField{Key: key, Value: value})
}

// Entries returns a copy of the pairs in insertion order.
func (f *FormData) Entries() []FormField {
	out := make([]FormField, len(f.fields))
	copy(out, f.fields)
	return out
}

// Get returns the first value stored under key.
func (f *FormData) Get(key string) (string, bool) {
	for _, field := range f.fields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Len returns the number of pairs.
func (f *FormData) Len() int {
	return len(f.fields)
}

// Encode writes the pairs as a multipart/form-data body and returns it
// with the matching Content-Type, boundary included.
func (f *FormData) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range f.fields {
		if err := w.WriteField(field.Key, field.Value); err != nil {
			return nil, "", bodyError(ErrFormData, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", bodyError(ErrFormData, err)
	}
	return &buf, w.FormDataContentType(), nil
}

var errPairShape = errors.New("expected {key, value} pair")

// formDataFrom builds a container from an ordered pair sequence. Pairs
// may be typed FormFields or maps decoded from JSON or YAML.
func formDataFrom(data any) (*FormData, error) {
	form := NewFormData()

	switch pairs := data.(type) {
	case *FormData:
		if pairs.Len() == 0 {
			return nil, errors.New("no pairs")
		}
		for _, field := range pairs.fields {
			form.Append(field.Key, field.Value)
		}
	case []FormField:
		for i, field := range pairs {
			if field.Key == "" {
				return nil, fmt.Errorf("pair %d: empty key", i)
			}
			form.Append(field.Key, field.Value)
		}
	case []map[string]any:
		for i, pair := range pairs {
			key, value, err := pairFromMap(pair)
			if err != nil {
				return nil, fmt.Errorf("pair %d: %w", i, err)
			}
			form.Append(key, value)
		}
	case []map[string]string:
		for i, pair := range pairs {
			key, ok := pair["key"]
			value, hasValue := pair["value"]
			if !ok || key == "" || !hasValue {
				return nil, fmt.Errorf("pair %d: %w", i, errPairShape)
			}
			form.Append(key, value)
		}
	case []any:
		for i, item := range pairs {
			pair, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("pair %d: %w, got %T", i, errPairShape, item)
			}
			key, value, err := pairFromMap(pair)
			if err != nil {
				return nil, fmt.Errorf("pair %d: %w", i, err)
			}
			form.Append(key, value)
		}
	default:
		return nil, fmt.Errorf("%w sequence, got %T", errPairShape, data)
	}

	return form, nil
}

func pairFromMap(pair map[string]any) (string, string, error) {
	rawKey, ok := pair["key"]
	if !ok {
		return "", "", errPairShape
	}
	key, ok := rawKey.(string)
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: key must be a non-empty string", errPairShape)
	}
	rawValue, ok := pair["value"]
	if !ok {
		return "", "", errPairShape
	}
	switch v := rawValue.(type) {
	case string:
		return key, v, nil
	case nil:
		return key, "", nil
	default:
		return key, fmt.Sprint(v), nil
	}
}
