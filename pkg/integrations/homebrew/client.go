package homebrew

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/matzehuels/rustbrew/pkg/integrations"
)

// DefaultEndpoint serves the full Homebrew Core formula catalog.
const DefaultEndpoint = "https://formulae.brew.sh/api/formula.json"

// Client downloads the formula catalog from one endpoint.
type Client struct {
	*integrations.Client
	endpoint string
}

// NewClient creates a client for endpoint using hc for transport.
// An empty endpoint selects [DefaultEndpoint].
func NewClient(endpoint string, hc *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	headers := map[string]string{
		"User-Agent": integrations.UserAgent(),
		"Accept":     "application/json",
	}
	return &Client{
		Client:   integrations.NewClient(hc, headers),
		endpoint: endpoint,
	}
}

// Endpoint returns the catalog URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch streams the catalog body into w and returns the bytes written.
//
// Returns:
//   - [integrations.ErrNotFound] if the endpoint answers 404
//   - [integrations.ErrNetwork] for transport failures and other non-200 answers
//   - the writer's own error if writing to w fails
func (c *Client) Fetch(ctx context.Context, w io.Writer) (int64, error) {
	n, err := c.Stream(ctx, c.endpoint, w)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return n, fmt.Errorf("%w: catalog %s", err, c.endpoint)
		}
		return n, err
	}
	return n, nil
}
