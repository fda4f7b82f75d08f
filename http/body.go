package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Body is a request payload produced by BuildBody.
// The zero value is NoBody.
type Body struct {
	value any
	set   bool
}

// NoBody marks a request that carries no payload.
var NoBody = Body{}

// IsEmpty reports whether b is NoBody.
func (b Body) IsEmpty() bool { return !b.set }

// Value returns the payload as built: a string for JSON and text, a
// *FormData for form-data, and the caller's value for file and markdown.
func (b Body) Value() any { return b.value }

// Reader returns the payload ready to be written on the wire. The
// returned content type is non-empty when it must replace the one in
// the headers, as for multipart bodies that carry a boundary.
func (b Body) Reader() (io.Reader, string, error) {
	if !b.set {
		return nil, "", nil
	}

	switch v := b.value.(type) {
	case string:
		return strings.NewReader(v), "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case io.Reader:
		return v, "", nil
	case File:
		return bytes.NewReader(v.Content), "", nil
	case []File:
		if len(v) == 0 {
			return nil, "", nil
		}
		return bytes.NewReader(v[0].Content), "", nil
	case *FormData:
		return v.Encode()
	default:
		// Pass-through values that are not already bytes go out as JSON
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", bodyError(ErrSerialization, err)
		}
		return bytes.NewReader(data), "", nil
	}
}

// BuildBody validates data against ct and shapes it into a Body. When
// empty is true it returns NoBody without looking at the other
// arguments.
func BuildBody(ct ContentType, data any, empty bool) (Body, error) {
	if empty {
		return NoBody, nil
	}
	if ct == ContentNone || missingData(data) {
		return NoBody, bodyError(ErrMissingTypeOrData, nil)
	}
	if emptyData(data) {
		return NoBody, bodyError(ErrEmptyData, nil)
	}

	switch ct {
	case ContentJSON:
		encoded, err := json.Marshal(data)
		if err != nil {
			return NoBody, bodyError(ErrSerialization, err)
		}
		return Body{value: string(encoded), set: true}, nil
	case ContentFormData:
		form, err := formDataFrom(data)
		if err != nil {
			return NoBody, bodyError(ErrFormData, err)
		}
		return Body{value: form, set: true}, nil
	case ContentText:
		text, ok := data.(string)
		if !ok {
			return NoBody, bodyError(ErrInvalidTextData, fmt.Errorf("got %T", data))
		}
		return Body{value: text, set: true}, nil
	case ContentFile, ContentMarkdown:
		return Body{value: data, set: true}, nil
	default:
		return NoBody, bodyError(ErrUnknownContentType, nil)
	}
}

func missingData(data any) bool {
	if data == nil {
		return true
	}
	if s, ok := data.(string); ok {
		return s == ""
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// emptyData reports whether data is a structured value with no entries.
// Strings, numbers and readers are never considered empty here.
func emptyData(data any) bool {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return v.Len() == 0
	case reflect.Struct:
		return v.NumField() == 0
	}
	return false
}
