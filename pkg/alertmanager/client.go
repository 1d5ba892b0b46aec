// Package alertmanager models the Alertmanager v2 alert listing API
// and the client that fetches from it.
package alertmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
)

const (
	alertsPath = "/api/v2/alerts"
	statusPath = "/api/v2/status"
)

// Client lists alerts from one Alertmanager-compatible backend. The
// http.Client comes from the datasource's instance settings, so auth
// and TLS are already applied.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     log.Logger
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log.DefaultLogger,
	}
}

// Alerts fetches the current alert list, filtered by params, in the
// order the backend returns it. Each alert gets its status tagged into
// its labels before it is handed to the table transform.
func (c *Client) Alerts(ctx context.Context, params url.Values) ([]Alert, error) {
	u := c.baseURL + alertsPath
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	alerts := make([]Alert, 0)
	if err := json.NewDecoder(body).Decode(&alerts); err != nil {
		c.logger.Error("Failed to decode alert list", "url", u, "error", err)
		return nil, fmt.Errorf("decoding alert list: %w", err)
	}
	for i := range alerts {
		alerts[i].TagStatus()
	}
	return alerts, nil
}

// Status probes /api/v2/status. Used by the health check.
func (c *Client) Status(ctx context.Context) error {
	body, err := c.get(ctx, c.baseURL+statusPath)
	if err != nil {
		return err
	}
	return body.Close()
}

func (c *Client) get(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request to Alertmanager failed", "url", u, "error", err)
		return nil, fmt.Errorf("querying alertmanager: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		c.logger.Error("Alertmanager returned an error", "url", u, "status", resp.StatusCode, "body", string(snippet))
		return nil, fmt.Errorf("alertmanager returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
