package output

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	fhttp "github.com/wesleyorama2/fetcher/http"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]OutputFormat{
		"":     FormatText,
		"text": FormatText,
		"JSON": FormatJSON,
		"yaml": FormatYAML,
		"yml":  FormatYAML,
	}
	for name, expected := range tests {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err := ParseFormat("junit")
	assert.Error(t, err)
}

func TestGetFormatter(t *testing.T) {
	assert.IsType(t, &Formatter{}, GetFormatter(FormatText, false, false))
	assert.IsType(t, &JSONFormatter{}, GetFormatter(FormatJSON, false, false))
	assert.IsType(t, &YAMLFormatter{}, GetFormatter(FormatYAML, false, false))
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{Verbose: true}

	var req RequestData
	out := formatter.FormatRequest(newTestRequest(t, fhttp.ContentFormData, []fhttp.FormField{{Key: "a", Value: "1"}}))
	require.NoError(t, json.Unmarshal([]byte(out), &req))
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "https://api.example.com/users", req.URL)
	assert.Equal(t, "multipart/form-data", req.Headers["Content-Type"])
	assert.Equal(t, "follow", req.Redirect)
	assert.Equal(t, []any{map[string]any{"key": "a", "value": "1"}}, req.Body)

	var resp ResponseData
	out = formatter.FormatResponse(newTestResponse(http.StatusOK, `{"id":7}`))
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, map[string]any{"id": float64(7)}, resp.Body)
	require.NotNil(t, resp.Timing)
	assert.Equal(t, int64(42), resp.Timing.Total)
}

func TestYAMLFormatter(t *testing.T) {
	formatter := &YAMLFormatter{}
	out := formatter.FormatResponse(newTestResponse(http.StatusCreated, "created"))
	require.True(t, strings.HasPrefix(out, "---\n"))

	var doc struct {
		Response ResponseData `yaml:"response"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 201, doc.Response.StatusCode)
	assert.Equal(t, "created", doc.Response.Body)
	assert.Nil(t, doc.Response.Timing)

	out = formatter.FormatRequest(newTestRequest(t, fhttp.ContentText, "hi"))
	assert.Contains(t, out, "method: POST")
	assert.Contains(t, out, "body: hi")
}
