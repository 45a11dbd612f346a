package rpc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	u, err := buildURL("https://stamp.example/api/admission", "deployments", url.Values{
		"urn": {"eslap://acme/deployments/app1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://stamp.example/api/admission/deployments?urn=eslap%3A%2F%2Facme%2Fdeployments%2Fapp1", u)

	u, err = buildURL("http://localhost", "/bundles", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/bundles", u)
}

/**
 * Mock admission-like server covering every verb
 * @description
 * - Checks the bearer token on every request
 * - Echoes JSON bodies back for POST and PUT
 */
func newMockServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "message": "invalid token"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/test":
			w.Write([]byte(`{"message": "test response"}`))
		case (r.Method == http.MethodPost || r.Method == http.MethodPut) && r.URL.Path == "/api/echo":
			body, _ := io.ReadAll(r.Body)
			w.Write(body)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/items":
			w.Write([]byte(`{"deleted": "` + r.URL.Query().Get("id") + `"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/upload":
			file, header, err := r.FormFile("bundle")
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			content, _ := io.ReadAll(file)
			fmt.Fprintf(w, `{"name": %q, "size": %d}`, header.Filename, len(content))
		case r.URL.Path == "/api/plain":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		case r.URL.Path == "/api/empty":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestHTTPClientWithMockServer(t *testing.T) {
	server := newMockServer(t)
	defer server.Close()

	client := NewHTTPClient(&HTTPConfig{BaseURL: server.URL + "/api", Token: "secret", Timeout: 5 * time.Second})
	defer client.Close()
	ctx := context.Background()

	resp, err := client.Get(ctx, "test", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Error)
	assert.JSONEq(t, `{"message": "test response"}`, string(resp.Body))

	resp, err = client.Post(ctx, "echo", map[string]int{"web": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"web": 3}`, string(resp.Body))

	resp, err = client.Put(ctx, "echo", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "b"}`, string(resp.Body))

	resp, err = client.Delete(ctx, "items", url.Values{"id": {"7"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted": "7"}`, string(resp.Body))

	resp, err = client.Upload(ctx, "upload", "bundle", "Manifest.json", strings.NewReader("{}"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Manifest.json", "size": 2}`, string(resp.Body))
}

func TestHTTPClientErrorResponses(t *testing.T) {
	server := newMockServer(t)
	defer server.Close()
	ctx := context.Background()

	unauthorized := NewHTTPClient(&HTTPConfig{BaseURL: server.URL + "/api", Token: "wrong"})
	resp, err := unauthorized.Get(ctx, "test", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid token", resp.Error)

	client := NewHTTPClient(&HTTPConfig{BaseURL: server.URL + "/api", Token: "secret"})
	resp, err = client.Get(ctx, "plain", nil)
	require.NoError(t, err)
	assert.Equal(t, "upstream down", resp.Error)

	resp, err = client.Get(ctx, "empty", nil)
	require.NoError(t, err)
	assert.Equal(t, "503 Service Unavailable", resp.Error)
}

func TestHTTPClientClosed(t *testing.T) {
	client := NewHTTPClient(nil)
	require.NoError(t, client.Close())
	_, err := client.Get(context.Background(), "test", nil)
	assert.Error(t, err)
}

func TestHTTPClientTransportFailure(t *testing.T) {
	server := newMockServer(t)
	url := server.URL
	server.Close()

	client := NewHTTPClient(&HTTPConfig{BaseURL: url, Token: "secret", Timeout: time.Second})
	_, err := client.Get(context.Background(), "api/test", nil)
	assert.Error(t, err)
}
