package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/wesleyorama2/fetcher/http"
)

// FormatProvider renders a prepared request and its response.
type FormatProvider interface {
	FormatRequest(req *http.Request) string
	FormatResponse(resp *http.Response) string
}

// Formatter is responsible for formatting HTTP requests and responses in text format
type Formatter struct {
	Verbose bool
	NoColor bool
	colors  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	colors := DefaultColorScheme()
	if noColor {
		colors = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		colors:  colors,
	}
}

// FormatRequest formats an HTTP request for display
func (f *Formatter) FormatRequest(req *http.Request) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "▶ REQUEST: %s %s\n", f.colors.Method.Sprint(req.Method), f.colors.URL.Sprint(req.URL))

	if len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, key := range sortedKeys(req.Headers) {
			fmt.Fprintf(&buf, "    %s: %s\n", f.colors.HeaderKey.Sprint(key), displayHeader(key, req.Headers[key], f.Verbose))
		}
	}

	if !req.Body.IsEmpty() {
		buf.WriteString("  Body: ")
		buf.WriteString(describeBody(req.Body.Value()))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse formats an HTTP response for display
func (f *Formatter) FormatResponse(resp *http.Response) string {
	var buf strings.Builder

	statusColor := f.colors.StatusError
	if resp.IsSuccess() {
		statusColor = f.colors.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.colors.StatusWarn
	}

	fmt.Fprintf(&buf, "◀ RESPONSE: %s (%dms)\n", statusColor.Sprint(resp.Status), resp.GetResponseTimeMillis())

	if f.Verbose {
		buf.WriteString("  Timing:\n")
		fmt.Fprintf(&buf, "    DNS Lookup:         %dms\n", resp.GetDNSLookupTimeMillis())
		fmt.Fprintf(&buf, "    TCP Connection:     %dms\n", resp.GetTCPConnectTimeMillis())
		fmt.Fprintf(&buf, "    TLS Handshake:      %dms\n", resp.GetTLSHandshakeTimeMillis())
		fmt.Fprintf(&buf, "    Time to First Byte: %dms\n", resp.GetTimeToFirstByteMillis())
		fmt.Fprintf(&buf, "    Content Transfer:   %dms\n", resp.GetContentTransferTimeMillis())
		fmt.Fprintf(&buf, "    Total:              %dms\n", resp.GetTotalTimeMillis())

		buf.WriteString("  Headers:\n")
		keys := make([]string, 0, len(resp.Headers))
		for key := range resp.Headers {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, value := range resp.Headers[key] {
				fmt.Fprintf(&buf, "    %s: %s\n", f.colors.HeaderKey.Sprint(key), value)
			}
		}
	}

	body, err := resp.GetBodyAsString()
	if err == nil && body != "" {
		buf.WriteString("  Body:\n")
		buf.WriteString(formatJSONString(body))
		buf.WriteString("\n")
	}

	return buf.String()
}

// displayHeader masks the bearer token unless verbose output is on.
func displayHeader(key, value string, verbose bool) string {
	if key != http.HeaderAuthorization || verbose {
		return value
	}
	return "Bearer ****"
}

// describeBody renders a built body value for humans.
func describeBody(value any) string {
	switch v := value.(type) {
	case string:
		return formatJSONString(v)
	case []byte:
		return formatJSONString(string(v))
	case *http.FormData:
		pairs := make([]string, 0, v.Len())
		for _, field := range v.Entries() {
			pairs = append(pairs, field.Key+"="+field.Value)
		}
		return "form-data [" + strings.Join(pairs, ", ") + "]"
	case http.File:
		return fmt.Sprintf("file %s (%s, %d bytes)", v.Name, v.Type, len(v.Content))
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return formatJSONString(string(data))
	}
}

// formatJSONString attempts to pretty-print a JSON string
func formatJSONString(s string) string {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, []byte(s), "  ", "  "); err != nil {
		return s
	}
	return prettyJSON.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
