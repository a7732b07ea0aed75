// Package vpic - клиент публичного справочника NHTSA vPIC.
package vpic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// GET {base}/GetAllMakes?format=json
// GET {base}/GetModelsForMake/{make}?format=json

type makesResponse struct {
	Results []struct {
		MakeName string `json:"Make_Name"`
	} `json:"Results"`
}

type modelsResponse struct {
	Results []struct {
		ModelName string `json:"Model_Name"`
	} `json:"Results"`
}

type Client struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &Client{
		client:    client,
		log:       log.With("component", "vpic_client"),
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "carcost/1.0",
	}
}

func (c *Client) Makes(ctx context.Context) ([]string, error) {
	var resp makesResponse
	if err := c.getJSON(ctx, "/GetAllMakes", &resp); err != nil {
		return nil, err
	}

	makes := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		makes = append(makes, r.MakeName)
	}
	return makes, nil
}

func (c *Client) Models(ctx context.Context, makeName string) ([]string, error) {
	var resp modelsResponse
	if err := c.getJSON(ctx, "/GetModelsForMake/"+url.PathEscape(makeName), &resp); err != nil {
		return nil, err
	}

	models := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		models = append(models, r.ModelName)
	}
	return models, nil
}

func (c *Client) getJSON(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?format=json", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("sending request", "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("request failed: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
