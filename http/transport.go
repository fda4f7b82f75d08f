package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"
)

// RedirectPolicy controls what a transport does with 3xx responses.
type RedirectPolicy int

const (
	// RedirectFollow follows redirects, the default for every operation.
	RedirectFollow RedirectPolicy = iota
	// RedirectManual returns the 3xx response as is.
	RedirectManual
	// RedirectError fails the request with ErrRedirect.
	RedirectError
)

func (p RedirectPolicy) String() string {
	switch p {
	case RedirectFollow:
		return "follow"
	case RedirectManual:
		return "manual"
	case RedirectError:
		return "error"
	}
	return "unknown"
}

// maxRedirects matches the net/http default.
const maxRedirects = 10

var ErrRedirect = errors.New("redirect not allowed")

// Request is what a Transport sends: the shaped headers and body plus
// the target URL and redirect policy.
type Request struct {
	Method   string
	URL      string
	Headers  Headers
	Body     Body
	Redirect RedirectPolicy
}

// Transport sends a single request. Implementations must not retry and
// must return non-2xx responses without error.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

type redirectPolicyKey struct{}

func withRedirectPolicy(ctx context.Context, p RedirectPolicy) context.Context {
	return context.WithValue(ctx, redirectPolicyKey{}, p)
}

// checkRedirect applies the policy stored in the outgoing request's
// context. It is shared by both transports.
func checkRedirect(req *http.Request, via []*http.Request) error {
	policy, _ := req.Context().Value(redirectPolicyKey{}).(RedirectPolicy)
	switch policy {
	case RedirectManual:
		return http.ErrUseLastResponse
	case RedirectError:
		return ErrRedirect
	}
	if len(via) >= maxRedirects {
		return errors.New("stopped after 10 redirects")
	}
	return nil
}

// NetTransport sends requests with net/http and records per-phase timing.
// NetTransport is safe for concurrent use.
type NetTransport struct {
	httpClient *http.Client
}

// NewNetTransport wraps a shallow copy of httpClient, or a fresh client
// when nil. The copy's CheckRedirect is replaced so the per-request
// policy applies; any CheckRedirect set by the caller is not used, and
// the caller's client is left unchanged.
func NewNetTransport(httpClient *http.Client) *NetTransport {
	if httpClient == nil {
		httpClient = &http.Client{}
	} else {
		c := *httpClient
		httpClient = &c
	}
	httpClient.CheckRedirect = checkRedirect
	return &NetTransport{httpClient: httpClient}
}

// Send executes req and reads the whole response body.
func (t *NetTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	bodyReader, contentType, err := req.Body.Reader()
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(withRedirectPolicy(ctx, req.Redirect), req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, err
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if contentType != "" {
		httpReq.Header.Set(HeaderContentType, contentType)
	}

	timing := TimingInfo{
		StartTime: time.Now(),
	}

	var dnsStart, connectStart, tlsHandshakeStart time.Time
	// end of the last completed phase, TTFB is measured from here
	lastPhaseEnd := timing.StartTime

	trace := &httptrace.ClientTrace{
		DNSStart: func(httptrace.DNSStartInfo) {
			dnsStart = time.Now()
		},
		DNSDone: func(httptrace.DNSDoneInfo) {
			end := time.Now()
			timing.DNSLookupTime = end.Sub(dnsStart)
			lastPhaseEnd = end
		},
		ConnectStart: func(network, addr string) {
			connectStart = time.Now()
		},
		ConnectDone: func(network, addr string, err error) {
			if err == nil {
				end := time.Now()
				timing.TCPConnectTime = end.Sub(connectStart)
				lastPhaseEnd = end
			}
		},
		TLSHandshakeStart: func() {
			tlsHandshakeStart = time.Now()
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			if err == nil {
				end := time.Now()
				timing.TLSHandshakeTime = end.Sub(tlsHandshakeStart)
				lastPhaseEnd = end
			}
		},
		GotFirstResponseByte: func() {
			timing.TimeToFirstByte = time.Since(lastPhaseEnd)
		},
	}
	httpReq = httpReq.WithContext(httptrace.WithClientTrace(httpReq.Context(), trace))

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	transferStart := time.Now()
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	timing.ContentTransferTime = time.Since(transferStart)
	timing.TotalTime = time.Since(timing.StartTime)

	return &Response{
		StatusCode:   httpResp.StatusCode,
		Status:       httpResp.Status,
		Headers:      httpResp.Header,
		Body:         io.NopCloser(bytes.NewReader(body)),
		ResponseTime: timing.TotalTime,
		Timing:       timing,
		rawBody:      body,
		parsed:       true,
	}, nil
}
