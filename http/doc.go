// Package http shapes and dispatches requests against a single base URL.
//
// The package centres on two pure builders. BuildHeaders produces the
// Content-Type and optional bearer Authorization header for a declared
// ContentType. BuildBody validates and serializes the payload for that
// same ContentType. Both report failures as *ValidationError values that
// wrap one of the Err* sentinels, so callers can match with errors.Is:
//
//	headers, err := http.BuildHeaders(http.ContentJSON, "token")
//	body, err := http.BuildBody(http.ContentText, "hello", false)
//	if errors.Is(err, http.ErrInvalidTextData) {
//	    ...
//	}
//
// Client wraps the builders with GetAll, Get, Post, Put and Delete. Each
// call builds its own headers and body and hands them to a Transport
// exactly once, following redirects by default:
//
//	client, err := http.NewClient("https://api.example.com/users",
//	    http.WithToken("default-token"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Post(ctx, http.ContentJSON, map[string]any{"name": "John"},
//	    http.WithRequestToken("override"),
//	)
//
// Multipart bodies are built from ordered key/value pairs:
//
//	resp, err := client.Post(ctx, http.ContentFormData, []http.FormField{
//	    {Key: "a", Value: "1"},
//	})
//
// Two transports are provided: NetTransport on net/http, which records
// per-phase timing with httptrace, and RestyTransport on resty. Neither
// retries, sets timeouts or classifies status codes; the raw Response is
// returned to the caller.
package http
