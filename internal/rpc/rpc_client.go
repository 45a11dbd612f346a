package rpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sync"

	"eslap-workspace/internal/logger"
)

type httpClient struct {
	config    *HTTPConfig
	client    *http.Client
	transport *http.Transport
	mu        sync.Mutex
	closed    bool
}

/**
 * Create new HTTP client
 * @param {HTTPConfig} config - HTTP client configuration, defaults when nil
 * @returns {HTTPClient} HTTP client interface
 * @description
 * - One request per call, no retries; the timeout applies to the transport only
 * - Requests carry "Authorization: Bearer <token>" when a token is configured
 * @example
 * client := NewHTTPClient(&HTTPConfig{BaseURL: "https://stamp/admission", Token: token})
 * defer client.Close()
 */
func NewHTTPClient(config *HTTPConfig) HTTPClient {
	if config == nil {
		config = DefaultHTTPConfig()
	}

	client := &httpClient{
		config: config,
	}
	client.transport = http.DefaultTransport.(*http.Transport).Clone()
	client.client = &http.Client{
		Transport: client.transport,
		Timeout:   config.Timeout,
	}
	return client
}

// Get sends a GET request with query parameters.
func (c *httpClient) Get(ctx context.Context, path string, params url.Values) (*HTTPResponse, error) {
	return c.do(ctx, http.MethodGet, path, params, nil, "")
}

/**
 * Send POST request
 * @param {string} path - API endpoint path relative to the base URL
 * @param {interface{}} data - Request body, serialized to JSON
 * @returns {*HTTPResponse} Response, with Error set for non 2xx statuses
 * @returns {error} Error if the request cannot be built or sent
 */
func (c *httpClient) Post(ctx context.Context, path string, data interface{}) (*HTTPResponse, error) {
	body, err := serializeData(data)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, "application/json")
}

func (c *httpClient) Put(ctx context.Context, path string, data interface{}) (*HTTPResponse, error) {
	body, err := serializeData(data)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, path, nil, body, "application/json")
}

func (c *httpClient) Delete(ctx context.Context, path string, params url.Values) (*HTTPResponse, error) {
	return c.do(ctx, http.MethodDelete, path, params, nil, "")
}

/**
 * Upload a file as multipart/form-data
 * @param {string} path - API endpoint path
 * @param {string} field - Form field name of the file
 * @param {string} fileName - File name sent in the part header
 * @param {io.Reader} content - File content
 */
func (c *httpClient) Upload(ctx context.Context, path string, field string, fileName string, content io.Reader) (*HTTPResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to copy form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType())
}

func (c *httpClient) do(ctx context.Context, method, path string, params url.Values, body io.Reader, contentType string) (*HTTPResponse, error) {
	if c.isClosed() {
		return nil, fmt.Errorf("client closed")
	}

	target, err := buildURL(c.config.BaseURL, path, params)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	logger.Debugf("Sending %s request to %s", method, target)

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	httpResp, err := deserializeResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize response: %w", err)
	}
	return httpResp, nil
}

// Close releases idle connections; later calls fail.
func (c *httpClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	c.closed = true
	logger.Debugf("HTTP client for %s closed", c.config.BaseURL)
	return nil
}

func (c *httpClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
