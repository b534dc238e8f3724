package fiveeleven

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

const (
	DefaultBaseURL = "http://api.511.org/transit"
	DefaultAgency  = "SF"
)

var utf8BOM = []byte("\ufeff")

// Client calls the 511.org transit API for one agency.
type Client struct {
	baseURL    string
	apiKey     string
	agency     string
	httpClient *http.Client
}

// NewClient creates a client. Empty baseURL and agency fall back to the
// public endpoint and the SF agency.
func NewClient(baseURL, apiKey, agency string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if agency == "" {
		agency = DefaultAgency
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		agency:     agency,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetPatternsForLine returns the journey patterns of lineID in provider order.
func (c *Client) GetPatternsForLine(ctx context.Context, lineID string) ([]model.JourneyPattern, error) {
	var resp patternsResponse
	err := c.getJSON(ctx, "/patterns", url.Values{
		"operator_id": {c.agency},
		"line_id":     {lineID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	out := make([]model.JourneyPattern, 0, len(resp.JourneyPatterns))
	for _, p := range resp.JourneyPatterns {
		jp, err := p.toModel()
		if err != nil {
			return nil, fmt.Errorf("decode /patterns for line %s: %w", lineID, err)
		}
		out = append(out, jp)
	}
	return out, nil
}

// GetUpcomingVisits returns the monitored visits to stopID. The provider
// usually returns the next three arrivals, but the count is not guaranteed.
func (c *Client) GetUpcomingVisits(ctx context.Context, stopID string) ([]model.Visit, error) {
	var resp stopMonitoringResponse
	err := c.getJSON(ctx, "/StopMonitoring", url.Values{
		"agency":   {c.agency},
		"stopCode": {stopID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	visits := resp.ServiceDelivery.StopMonitoringDelivery.MonitoredStopVisit
	out := make([]model.Visit, 0, len(visits))
	for _, v := range visits {
		out = append(out, v.toModel())
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("api_key", c.apiKey)
	q.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, redactKey(err, c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, path)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(bytes.TrimPrefix(body, utf8BOM), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// redactKey keeps the api key out of transport errors, which embed the URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
