package batchdl

import (
	"context"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Transport performs the network side of one fetch. Implementations must
// follow redirects, write the response body to w, report progress through
// progress when it is non-nil, and fail on any non-2xx status.
type Transport interface {
	Perform(ctx context.Context, url string, w io.Writer, progress ProgressFunc) error
}

// TransportOptions configures RestyTransport.
type TransportOptions struct {
	// Timeout bounds a whole request including the body. Zero means none.
	Timeout time.Duration

	// MaxRedirects is the number of redirects followed. Default: 10
	MaxRedirects int

	// UserAgent overrides the default User-Agent header when set.
	UserAgent string
}

// DefaultTransportOptions follows up to 10 redirects and sets no timeout.
func DefaultTransportOptions() TransportOptions {
	return TransportOptions{
		MaxRedirects: 10,
	}
}

// RestyTransport is the production Transport. It never retries.
type RestyTransport struct {
	client *resty.Client
}

// NewTransport creates a resty backed Transport configured by opts.
func NewTransport(opts TransportOptions) *RestyTransport {
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = DefaultTransportOptions().MaxRedirects
	}

	client := resty.New().
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(opts.MaxRedirects)).
		SetRetryCount(0).
		SetDoNotParseResponse(true).
		SetLogger(restyLogger{log: NewLogger("http", 2)})

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &RestyTransport{client: client}
}

// Perform GETs url and streams the body into w. A non-2xx response is
// returned as *StatusError without touching w.
func (t *RestyTransport) Perform(ctx context.Context, url string, w io.Writer, progress ProgressFunc) error {
	resp, err := t.client.R().SetContext(ctx).Get(url)
	if resp != nil {
		if body := resp.RawBody(); body != nil {
			defer body.Close()
		}
	}
	if err != nil {
		return errors.Wrap(err, "request failed")
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return &StatusError{Code: code, Status: resp.Status()}
	}

	if _, err := copyBuffer(w, resp.RawBody(), resp.RawResponse.ContentLength, progress); err != nil {
		return errors.Wrap(err, "transfer failed")
	}
	return nil
}
