package integrations

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client provides shared HTTP functionality for remote catalog clients.
// It applies default headers and classifies failures; it never retries.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given HTTP client and default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed, and nil for hc to
// use a client without timeout.
func NewClient(hc *http.Client, headers map[string]string) *Client {
	if hc == nil {
		hc = NewHTTPClient(0)
	}
	return &Client{
		http:    hc,
		headers: headers,
	}
}

// Stream performs an HTTP GET request and copies the response body into w.
// It returns the number of bytes written. A failure while reading the body
// wraps [ErrNetwork]; a failure of w itself is returned unchanged.
func (c *Client) Stream(ctx context.Context, url string, w io.Writer) (int64, error) {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	tw := NewTrackingWriter(w)
	n, err := io.Copy(tw, body)
	if err != nil {
		if tw.Err() != nil {
			return n, tw.Err()
		}
		if ctx.Err() != nil {
			return n, ctx.Err()
		}
		return n, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return n, nil
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// TrackingWriter remembers the first error returned by the wrapped writer,
// so a caller can tell a local write failure apart from a broken connection
// once a copy has failed.
type TrackingWriter struct {
	w   io.Writer
	err error
}

// NewTrackingWriter wraps w.
func NewTrackingWriter(w io.Writer) *TrackingWriter {
	return &TrackingWriter{w: w}
}

func (t *TrackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}

// Err returns the first write error, or nil.
func (t *TrackingWriter) Err() error {
	return t.err
}
