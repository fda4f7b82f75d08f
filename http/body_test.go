package http

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBody_Empty(t *testing.T) {
	body, err := BuildBody(ContentNone, nil, true)
	require.NoError(t, err)
	assert.True(t, body.IsEmpty())

	// the empty flag wins over otherwise invalid input
	body, err = BuildBody(ContentText, 42, true)
	require.NoError(t, err)
	assert.Equal(t, NoBody, body)

	r, ct, err := body.Reader()
	require.NoError(t, err)
	assert.Nil(t, r)
	assert.Empty(t, ct)
}

func TestBuildBody(t *testing.T) {
	file := File{Name: "img.jpg", Type: "image/jpeg", Content: []byte{0xff, 0xd8}}

	tests := []struct {
		name     string
		ct       ContentType
		data     any
		expected any
	}{
		{"text", ContentText, "hello", "hello"},
		{"text raw", ContentText, "je suis bon", "je suis bon"},
		{"markdown", ContentMarkdown, "<h1>MARKDOWN</h1>", "<h1>MARKDOWN</h1>"},
		{"file string", ContentFile, "img:base64", "img:base64"},
		{"file value", ContentFile, file, file},
		{"json object", ContentJSON, map[string]any{"name": "John"}, `{"name":"John"}`},
		{"json string", ContentJSON, "plain", `"plain"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := BuildBody(tt.ct, tt.data, false)
			require.NoError(t, err)
			assert.False(t, body.IsEmpty())
			assert.Equal(t, tt.expected, body.Value())
		})
	}
}

func TestBuildBody_Errors(t *testing.T) {
	tests := []struct {
		name string
		ct   ContentType
		data any
		kind error
	}{
		{"no type", ContentNone, "data", ErrMissingTypeOrData},
		{"no data", ContentJSON, nil, ErrMissingTypeOrData},
		{"empty string", ContentText, "", ErrMissingTypeOrData},
		{"nil map", ContentJSON, map[string]any(nil), ErrMissingTypeOrData},
		{"empty object", ContentJSON, map[string]any{}, ErrEmptyData},
		{"empty slice", ContentJSON, []int{}, ErrEmptyData},
		{"empty struct", ContentJSON, struct{}{}, ErrEmptyData},
		{"text with object", ContentText, map[string]string{"name": "John"}, ErrInvalidTextData},
		{"text with number", ContentText, 42, ErrInvalidTextData},
		{"unknown type", ContentType(99), map[string]string{"a": "b"}, ErrUnknownContentType},
		{"json unsupported value", ContentJSON, math.Inf(1), ErrSerialization},
		{"json channel", ContentJSON, map[string]any{"c": make(chan int)}, ErrSerialization},
		{"form-data wrong shape", ContentFormData, map[string]string{"a": "1"}, ErrFormData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := BuildBody(tt.ct, tt.data, false)
			assert.True(t, body.IsEmpty())
			require.ErrorIs(t, err, tt.kind)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "body", verr.Op)
		})
	}
}

func TestBuildBody_SerializationKeepsCause(t *testing.T) {
	_, err := BuildBody(ContentJSON, map[string]any{"c": make(chan int)}, false)
	var typeErr *json.UnsupportedTypeError
	assert.True(t, errors.As(err, &typeErr))
}

func TestBuildBody_JSONRoundTrip(t *testing.T) {
	inputs := []any{
		map[string]any{"name": "John", "age": float64(30), "tags": []any{"a", "b"}},
		[]any{float64(1), "two", true, nil},
		map[string]any{"nested": map[string]any{"deep": map[string]any{"ok": true}}},
		"just a string",
		float64(12.5),
	}

	for _, input := range inputs {
		body, err := BuildBody(ContentJSON, input, false)
		require.NoError(t, err)

		encoded, ok := body.Value().(string)
		require.True(t, ok)

		var decoded any
		require.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
		assert.Equal(t, input, decoded)
	}
}

func TestBody_Reader(t *testing.T) {
	tests := []struct {
		name     string
		ct       ContentType
		data     any
		expected string
	}{
		{"text", ContentText, "hello", "hello"},
		{"json", ContentJSON, map[string]int{"a": 1}, `{"a":1}`},
		{"markdown bytes", ContentMarkdown, []byte("# title"), "# title"},
		{"file", ContentFile, File{Type: "text/csv", Content: []byte("a,b")}, "a,b"},
		{"file list", ContentFile, []File{{Type: "text/csv", Content: []byte("x")}}, "x"},
		{"reader", ContentFile, strings.NewReader("stream"), "stream"},
		{"markdown passthrough", ContentMarkdown, map[string]string{"k": "v"}, `{"k":"v"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := BuildBody(tt.ct, tt.data, false)
			require.NoError(t, err)

			r, ct, err := body.Reader()
			require.NoError(t, err)
			assert.Empty(t, ct)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}
