package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apierrors "github.com/itchan-dev/signup/shared/errors"
)

// maxPayload caps how much of an error body is kept for display. Longer
// bodies are cut at the limit; everything before the cut is kept verbatim.
const maxPayload = 64 << 10

// APIClient struct handles all communication with the backend API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a client for the API at baseURL. A zero timeout means none.
func New(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{Timeout: timeout},
	}
}

// do is the single helper for making API requests.
func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// checkStatus drains resp and turns any non-2xx answer into *errors.APIError.
func checkStatus(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return fmt.Errorf("read error body: %w", err)
	}
	// http.Error terminates plain-text bodies with a newline
	payload := strings.TrimSuffix(string(body), "\n")
	return &apierrors.APIError{StatusCode: resp.StatusCode, Payload: payload}
}
