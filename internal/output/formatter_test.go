package output

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	fhttp "github.com/wesleyorama2/fetcher/http"
)

func newTestRequest(t *testing.T, ct fhttp.ContentType, data any) *fhttp.Request {
	t.Helper()
	client, err := fhttp.NewClient("https://api.example.com/users", fhttp.WithToken("secret"))
	if err != nil {
		t.Fatalf("Error creating client: %v", err)
	}
	req, err := client.Prepare(http.MethodPost, ct, data)
	if err != nil {
		t.Fatalf("Error preparing request: %v", err)
	}
	return req
}

func newTestResponse(status int, body string) *fhttp.Response {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	return &fhttp.Response{
		StatusCode:   status,
		Status:       http.StatusText(status),
		Headers:      headers,
		Body:         io.NopCloser(strings.NewReader(body)),
		ResponseTime: 42 * time.Millisecond,
		Timing:       fhttp.TimingInfo{DNSLookupTime: 3 * time.Millisecond, TotalTime: 42 * time.Millisecond},
	}
}

func TestFormatter_FormatRequest(t *testing.T) {
	formatter := NewFormatter(false, true)
	out := formatter.FormatRequest(newTestRequest(t, fhttp.ContentJSON, map[string]string{"name": "John"}))

	expected := []string{
		"▶ REQUEST: POST https://api.example.com/users",
		"Content-Type: application/json",
		"Authorization: Bearer ****",
		`"name": "John"`,
	}
	for _, s := range expected {
		if !strings.Contains(out, s) {
			t.Errorf("Expected output to contain %q, got:\n%s", s, out)
		}
	}
}

func TestFormatter_FormatRequestVerboseShowsToken(t *testing.T) {
	formatter := NewFormatter(true, true)
	out := formatter.FormatRequest(newTestRequest(t, fhttp.ContentText, "hello"))
	if !strings.Contains(out, "Authorization: Bearer secret") {
		t.Errorf("Expected token in verbose output, got:\n%s", out)
	}
}

func TestFormatter_FormatRequestFormData(t *testing.T) {
	formatter := NewFormatter(false, true)
	out := formatter.FormatRequest(newTestRequest(t, fhttp.ContentFormData, []fhttp.FormField{{Key: "a", Value: "1"}}))
	if !strings.Contains(out, "form-data [a=1]") {
		t.Errorf("Expected form-data summary, got:\n%s", out)
	}
}

func TestFormatter_FormatResponse(t *testing.T) {
	formatter := NewFormatter(false, true)
	out := formatter.FormatResponse(newTestResponse(http.StatusOK, `{"message":"success"}`))

	if !strings.Contains(out, "◀ RESPONSE: OK (42ms)") {
		t.Errorf("Unexpected status line:\n%s", out)
	}
	if !strings.Contains(out, `"message": "success"`) {
		t.Errorf("Expected pretty-printed body:\n%s", out)
	}
	if strings.Contains(out, "Timing:") {
		t.Errorf("Timing should only be shown in verbose mode:\n%s", out)
	}
}

func TestFormatter_FormatResponseVerbose(t *testing.T) {
	formatter := NewFormatter(true, true)
	out := formatter.FormatResponse(newTestResponse(http.StatusNotFound, "not found"))

	for _, s := range []string{"Timing:", "DNS Lookup:         3ms", "Content-Type: application/json", "not found"} {
		if !strings.Contains(out, s) {
			t.Errorf("Expected output to contain %q, got:\n%s", s, out)
		}
	}
}

func TestFormatJSONString(t *testing.T) {
	if got := formatJSONString("plain text"); got != "plain text" {
		t.Errorf("Expected non-JSON to pass through, got %q", got)
	}
	if got := formatJSONString(`{"a":1}`); got != "{\n    \"a\": 1\n  }" {
		t.Errorf("Unexpected indentation: %q", got)
	}
}
