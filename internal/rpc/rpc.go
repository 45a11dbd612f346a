package rpc

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

	"eslap-workspace/internal/models"
)

// HTTPClient is a JSON over HTTP client bound to one base URL and bearer token.
type HTTPClient interface {
	Get(ctx context.Context, path string, params url.Values) (*HTTPResponse, error)
	Post(ctx context.Context, path string, data interface{}) (*HTTPResponse, error)
	Put(ctx context.Context, path string, data interface{}) (*HTTPResponse, error)
	Delete(ctx context.Context, path string, params url.Values) (*HTTPResponse, error)
	Upload(ctx context.Context, path string, field string, fileName string, content io.Reader) (*HTTPResponse, error)
	Close() error
}

/**
 * HTTP client configuration
 * @property {string} BaseURL - URL every request path is appended to
 * @property {string} Token - Bearer token, no Authorization header when empty
 * @property {time.Duration} Timeout - Transport timeout of a whole request, 0 means none
 */
type HTTPConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		BaseURL: "http://localhost",
		Timeout: 30 * time.Second,
	}
}

// HTTPResponse is a decoded response. Error is set for non 2xx statuses.
type HTTPResponse struct {
	StatusCode int                 `json:"status_code"`
	Headers    map[string][]string `json:"headers"`
	Body       []byte              `json:"body"`
	Error      string              `json:"error"`
}

// buildURL appends path to the base URL path and encodes params as the query string.
func buildURL(baseURL, path string, params url.Values) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if path != "" {
		u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}

func serializeData(data interface{}) (io.Reader, error) {
	if data == nil {
		return nil, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize data: %w", err)
	}

	return bytes.NewReader(jsonData), nil
}

/**
 * Read a response into an HTTPResponse
 * @description
 * - 2xx responses are returned as is
 * - For other statuses Error holds the "message" or "error" of a JSON error body,
 *   the raw body when it is not JSON, or the status line when the body is empty
 */
func deserializeResponse(resp *http.Response) (*HTTPResponse, error) {
	defer resp.Body.Close()
	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	httpResp.Body = body
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return httpResp, nil
	}
	if len(body) == 0 {
		httpResp.Error = resp.Status
	} else {
		var errBody models.ErrorResponse
		if err := json.Unmarshal(body, &errBody); err != nil {
			httpResp.Error = strings.TrimSpace(string(body))
		} else if errBody.Message != "" {
			httpResp.Error = errBody.Message
		} else {
			httpResp.Error = errBody.Error
		}
	}
	if httpResp.Error == "" {
		httpResp.Error = resp.Status
	}
	return httpResp, nil
}
