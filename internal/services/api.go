// Raw HTTP transport shared by the lookup services
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIService performs raw GET requests against a JSON HTTP API.
type APIService struct {
	httpClient *http.Client
	userAgent  string
}

// NewAPIService creates a new API service instance. A nil client falls back to [http.DefaultClient].
func NewAPIService(client *http.Client, userAgent string) *APIService {
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		httpClient: client,
		userAgent:  userAgent,
	}
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the response is an HTTP 200.
func (r *APIResponse) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Object returns the decoded body as a JSON object, if it is one.
func (r *APIResponse) Object() (map[string]any, bool) {
	if !r.IsJSON {
		return nil, false
	}
	obj, ok := r.JSONData.(map[string]any)
	return obj, ok
}

// Get performs a GET request to the given URL and returns the raw response.
//
// Non-2xx responses are not errors; callers inspect StatusCode.
func (a *APIService) Get(ctx context.Context, url string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if err := json.Unmarshal(body, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}
