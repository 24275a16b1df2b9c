package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/wishlane/wishlane-cli/internal/config"
	"github.com/wishlane/wishlane-cli/internal/models"
)

// apiPrefix is prepended to every endpoint under the base URL.
const apiPrefix = "/api/mcp"

// Client talks to the Wishlane API. All requests carry the shared
// API key in the X-API-Key header.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	// ContextName is matched against project names when the backend
	// reports an ambiguous multi-project condition. Defaults to the
	// working directory name.
	ContextName string
}

// NewClient builds a client from resolved startup configuration.
func NewClient(cfg *config.Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = config.DefaultBaseURL
	}

	return &Client{
		BaseURL: base,
		APIKey:  cfg.APIKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		ContextName: workingDirName(),
	}
}

func workingDirName() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Base(wd)
}

// apiError is the backend's non-2xx body shape.
type apiError struct {
	Error string `json:"error"`
}

// Get issues an authenticated GET with the given query parameters.
func (c *Client) Get(endpoint string, params url.Values) ([]byte, error) {
	return c.do(http.MethodGet, endpoint, params, nil, false)
}

// Patch issues an authenticated PATCH with a JSON body.
func (c *Client) Patch(endpoint string, params url.Values, body interface{}) ([]byte, error) {
	return c.do(http.MethodPatch, endpoint, params, body, false)
}

// do performs one request. On a 400 carrying the multiple-projects
// marker it tries to infer the project from ContextName and re-issues
// the identical call once with project_id merged in. Every other
// failure, and a failed inference, propagates immediately: the
// condition being retried is missing disambiguation, not a transient
// fault, so there is no backoff and no second retry.
func (c *Client) do(method, endpoint string, params url.Values, body interface{}, retried bool) ([]byte, error) {
	reqURL := c.BaseURL + apiPrefix + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := errorMessage(respBody, resp.StatusCode)

		if resp.StatusCode == http.StatusBadRequest && !retried && IsAmbiguityError(msg) {
			if id := InferProjectID(ParseProjectEntries(msg), c.ContextName); id != "" {
				merged := cloneValues(params)
				merged.Set("project_id", id)
				return c.do(method, endpoint, merged, body, true)
			}
		}

		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, msg)
	}

	return respBody, nil
}

// errorMessage extracts the backend's error string, falling back to
// the HTTP status text when the body is not the expected JSON shape.
func errorMessage(body []byte, statusCode int) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	return http.StatusText(statusCode)
}

func cloneValues(params url.Values) url.Values {
	merged := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			merged.Add(k, v)
		}
	}
	return merged
}

// ListOptions are the pass-through filters for the list endpoint.
// Zero values are omitted from the query entirely.
type ListOptions struct {
	ProjectID string
	Status    string
	Priority  string
	SortBy    string
	Search    string
	Limit     int
	Offset    int
}

func (o ListOptions) values() url.Values {
	params := url.Values{}
	set := func(key, val string) {
		if val != "" {
			params.Set(key, val)
		}
	}
	set("project_id", o.ProjectID)
	set("status", o.Status)
	set("priority", o.Priority)
	set("sort_by", o.SortBy)
	set("q", o.Search)
	if o.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", o.Limit))
	}
	if o.Offset > 0 {
		params.Set("offset", fmt.Sprintf("%d", o.Offset))
	}
	return params
}

// ListFeatureRequests fetches feature requests with optional filters.
func (c *Client) ListFeatureRequests(opts ListOptions) (*models.FeatureRequestList, error) {
	respBody, err := c.Get("/feature-requests", opts.values())
	if err != nil {
		return nil, err
	}

	var list models.FeatureRequestList
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feature requests: %w", err)
	}
	return &list, nil
}

// GetStats fetches the aggregate stats snapshot for a project.
func (c *Client) GetStats(projectID string) (*models.Stats, error) {
	params := url.Values{}
	if projectID != "" {
		params.Set("project_id", projectID)
	}

	respBody, err := c.Get("/stats", params)
	if err != nil {
		return nil, err
	}

	var stats models.Stats
	if err := json.Unmarshal(respBody, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	return &stats, nil
}

// StatusUpdate is the PATCH body for updating a feature request.
// Empty fields are left untouched on the remote record.
type StatusUpdate struct {
	Status        string `json:"status,omitempty"`
	Priority      string `json:"priority,omitempty"`
	StatusMessage string `json:"status_message,omitempty"`
}

// UpdateFeatureRequest patches status, priority and/or the public
// status note of one feature request.
func (c *Client) UpdateFeatureRequest(id, projectID string, update StatusUpdate) (*models.FeatureRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("feature request id is required")
	}

	params := url.Values{}
	if projectID != "" {
		params.Set("project_id", projectID)
	}

	respBody, err := c.Patch("/feature-requests/"+url.PathEscape(id), params, update)
	if err != nil {
		return nil, err
	}

	var fr models.FeatureRequest
	if err := json.Unmarshal(respBody, &fr); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feature request: %w", err)
	}
	return &fr, nil
}
