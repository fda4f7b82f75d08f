package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/fetcher/http"
	"github.com/wesleyorama2/fetcher/internal/config"
	"github.com/wesleyorama2/fetcher/internal/logger"
	"github.com/wesleyorama2/fetcher/internal/output"
	"github.com/wesleyorama2/fetcher/pkg/jsonpath"
	"github.com/wesleyorama2/fetcher/pkg/jsonschema"
)

var errNoURL = errors.New("no URL given and the profile has no baseUrl")

// runRequest resolves configuration and flags into a client call for
// method, prints the exchange and runs the response checks.
func runRequest(cmd *cobra.Command, method string, args []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	profileName, _ := flags.GetString("profile")
	tokenFlag, _ := flags.GetString("token")
	typeFlag, _ := flags.GetString("type")
	path, _ := flags.GetString("path")
	transportName, _ := flags.GetString("transport")
	noRedirect, _ := flags.GetBool("no-redirect")
	format, _ := flags.GetString("output")
	verbose, _ := flags.GetBool("verbose")
	noColor, _ := flags.GetBool("no-color")
	extracts, _ := flags.GetStringArray("extract")
	schemaPath, _ := flags.GetString("schema")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	profile, err := cfg.Profile(profileName)
	if err != nil {
		return err
	}
	profileToken, err := http.TokenFromValue(profile.Token)
	if err != nil {
		return err
	}

	baseURL := profile.BaseURL
	if len(args) > 0 {
		baseURL = normalizeURL(args[0])
	}
	if baseURL == "" {
		return errNoURL
	}

	if typeFlag == "" {
		typeFlag = profile.Type
	}

	outputFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	if !noColor && !output.ColorEnabled(os.Stdout) {
		noColor = true
	}
	formatter := output.GetFormatter(outputFormat, verbose, noColor)

	transport, err := newTransport(transportName)
	if err != nil {
		return err
	}

	redirect := http.RedirectFollow
	if noRedirect {
		redirect = http.RedirectManual
	}

	out := cmd.OutOrStdout()
	client, err := http.NewClient(baseURL,
		http.WithToken(profileToken),
		http.WithTransport(&printingTransport{
			next:         transport,
			formatter:    formatter,
			out:          out,
			printRequest: outputFormat == output.FormatText || verbose,
		}),
		http.WithRedirectPolicy(redirect),
	)
	if err != nil {
		return err
	}

	logger.S.Debugw("client ready",
		"baseURL", baseURL,
		"profile", profileName,
		"transport", transportName,
		"redirect", redirect.String(),
	)

	options := []http.CallOption{http.WithRequestToken(tokenFlag)}
	if path != "" {
		options = append(options, http.WithPath(path))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var resp *http.Response
	if method == nethttp.MethodGet {
		ct := http.ContentJSON
		if typeFlag != "" {
			if ct, err = http.ParseContentType(typeFlag); err != nil {
				return err
			}
		}
		options = append(options, http.WithContentType(ct))

		if len(args) > 1 {
			resp, err = client.Get(ctx, args[1], options...)
		} else {
			resp, err = client.GetAll(ctx, options...)
		}
	} else {
		p, perr := readPayload(cmd, typeFlag)
		if perr != nil {
			return perr
		}
		if p.empty {
			options = append(options, http.WithEmptyBody())
		}
		if len(p.files) > 0 {
			options = append(options, http.WithFiles(p.files...))
		}

		switch method {
		case nethttp.MethodPost:
			resp, err = client.Post(ctx, p.contentType, p.data, options...)
		case nethttp.MethodPut:
			resp, err = client.Put(ctx, p.contentType, p.data, options...)
		case nethttp.MethodDelete:
			resp, err = client.Delete(ctx, p.contentType, p.data, options...)
		default:
			return fmt.Errorf("unsupported method: %s", method)
		}
	}
	if err != nil {
		return err
	}

	return checkResponse(out, resp, extracts, schemaPath, noColor)
}

// payload is the body input gathered from the write command flags.
type payload struct {
	contentType http.ContentType
	data        any
	files       []http.File
	empty       bool
}

// readPayload turns --data, --form, --file and --empty into a payload.
// --form implies form-data and --file implies file; an explicit --type
// that disagrees is rejected.
func readPayload(cmd *cobra.Command, typeName string) (payload, error) {
	var p payload
	flags := cmd.Flags()
	data, _ := flags.GetString("data")
	forms, _ := flags.GetStringArray("form")
	files, _ := flags.GetStringArray("file")
	p.empty, _ = flags.GetBool("empty")

	implied := http.ContentNone
	switch {
	case len(forms) > 0:
		implied = http.ContentFormData
	case len(files) > 0:
		implied = http.ContentFile
	}

	switch {
	case typeName != "":
		ct, err := http.ParseContentType(typeName)
		if err != nil {
			return p, err
		}
		if implied != http.ContentNone && ct != implied {
			return p, fmt.Errorf("--type %s conflicts with the %s flags", ct, implied)
		}
		p.contentType = ct
	case implied != http.ContentNone:
		p.contentType = implied
	default:
		p.contentType = http.ContentJSON
	}

	if p.empty {
		return p, nil
	}

	switch {
	case len(forms) > 0:
		fields, err := parseFormFields(forms)
		if err != nil {
			return p, err
		}
		p.data = fields
	case len(files) > 0:
		for _, path := range files {
			file, err := http.OpenFile(path)
			if err != nil {
				return p, err
			}
			p.files = append(p.files, file)
		}
		p.data = p.files[0]
	case data != "":
		raw, err := readData(data)
		if err != nil {
			return p, err
		}
		if p.contentType == http.ContentJSON {
			var decoded any
			if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
				return p, fmt.Errorf("invalid JSON data: %w", err)
			}
			p.data = decoded
		} else {
			p.data = raw
		}
	}

	return p, nil
}

// readData returns value, or the content of the file it names when it
// starts with @.
func readData(value string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		return value, nil
	}
	content, err := os.ReadFile(strings.TrimPrefix(value, "@"))
	if err != nil {
		return "", fmt.Errorf("error reading data file: %w", err)
	}
	return string(content), nil
}

func parseFormFields(pairs []string) ([]http.FormField, error) {
	fields := make([]http.FormField, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid form field %q, expected key=value", pair)
		}
		fields = append(fields, http.FormField{Key: strings.TrimSpace(key), Value: value})
	}
	return fields, nil
}

func parseExtracts(values []string) (map[string]string, error) {
	paths := make(map[string]string, len(values))
	for _, value := range values {
		name, path, ok := strings.Cut(value, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("invalid extract %q, expected name=$.path", value)
		}
		paths[name] = path
	}
	return paths, nil
}

func newTransport(name string) (http.Transport, error) {
	switch strings.ToLower(name) {
	case "", "net":
		return http.NewNetTransport(nil), nil
	case "resty":
		return http.NewRestyTransport(nil), nil
	}
	return nil, fmt.Errorf("unknown transport: %s", name)
}

// checkResponse runs --extract and --schema against the response body.
func checkResponse(out io.Writer, resp *http.Response, extracts []string, schemaPath string, noColor bool) error {
	if len(extracts) == 0 && schemaPath == "" {
		return nil
	}

	body, err := resp.GetBody()
	if err != nil {
		return err
	}

	if len(extracts) > 0 {
		paths, err := parseExtracts(extracts)
		if err != nil {
			return err
		}
		values, err := jsonpath.ExtractAll(body, paths)
		for _, value := range extracts {
			name, _, _ := strings.Cut(value, "=")
			if v, ok := values[name]; ok {
				fmt.Fprintf(out, "%s = %s\n", name, v)
			}
		}
		if err != nil {
			return err
		}
	}

	if schemaPath != "" {
		if err := jsonschema.ValidateFile(schemaPath, body); err != nil {
			return fmt.Errorf("response does not match schema: %w", err)
		}
		fmt.Fprintf(out, "%s response matches %s\n", output.SuccessIcon(noColor), schemaPath)
	}

	return nil
}

// normalizeURL adds http:// to URLs given without a scheme.
func normalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	u, err := url.Parse("http://" + raw)
	if err != nil {
		return raw
	}
	return u.String()
}

// printingTransport prints each request before sending it and each
// response after it arrives.
type printingTransport struct {
	next         http.Transport
	formatter    output.FormatProvider
	out          io.Writer
	printRequest bool
}

func (t *printingTransport) Send(ctx context.Context, req *http.Request) (*http.Response, error) {
	logger.S.Debugw("sending request",
		"method", req.Method,
		"url", req.URL,
		"contentType", req.Headers[http.HeaderContentType],
		"emptyBody", req.Body.IsEmpty(),
	)
	if t.printRequest {
		fmt.Fprint(t.out, t.formatter.FormatRequest(req))
	}

	resp, err := t.next.Send(ctx, req)
	if err != nil {
		logger.S.Debugw("transport failed", "error", err)
		return nil, err
	}

	logger.S.Debugw("received response", "status", resp.StatusCode, "totalTime", resp.Timing.TotalTime)
	fmt.Fprint(t.out, t.formatter.FormatResponse(resp))
	return resp, nil
}
