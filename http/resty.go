package http

import (
	"bytes"
	"context"
	"io"

	"github.com/go-resty/resty/v2"
)

// RestyTransport sends requests through a resty client. It honours the
// same per-request redirect policy as NetTransport.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport wraps client, or resty.New() when nil. The client
// is configured in place: its redirect policy is replaced with the
// per-request one and tracing is enabled. Pass a client dedicated to
// the transport if those settings must not leak to other callers.
func NewRestyTransport(client *resty.Client) *RestyTransport {
	if client == nil {
		client = resty.New()
	}
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(checkRedirect))
	client.EnableTrace()
	return &RestyTransport{client: client}
}

// Send executes req. resty reads the body eagerly.
func (t *RestyTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	bodyReader, contentType, err := req.Body.Reader()
	if err != nil {
		return nil, err
	}

	r := t.client.R().
		SetContext(withRedirectPolicy(ctx, req.Redirect)).
		SetHeaders(req.Headers)
	if bodyReader != nil {
		r.SetBody(bodyReader)
	}
	if contentType != "" {
		r.SetHeader(HeaderContentType, contentType)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}

	trace := resp.Request.TraceInfo()
	timing := TimingInfo{
		StartTime:           resp.Request.Time,
		DNSLookupTime:       trace.DNSLookup,
		TCPConnectTime:      trace.TCPConnTime,
		TLSHandshakeTime:    trace.TLSHandshake,
		TimeToFirstByte:     trace.ServerTime,
		ContentTransferTime: trace.ResponseTime,
		TotalTime:           trace.TotalTime,
	}

	body := resp.Body()
	return &Response{
		StatusCode:   resp.StatusCode(),
		Status:       resp.Status(),
		Headers:      resp.Header(),
		Body:         io.NopCloser(bytes.NewReader(body)),
		ResponseTime: resp.Time(),
		Timing:       timing,
		rawBody:      body,
		parsed:       true,
	}, nil
}
