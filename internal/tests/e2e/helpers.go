package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the connector under one session.
type TestClient struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
}

func NewTestClient(baseURL, sessionID string) *TestClient {
	return &TestClient{
		baseURL:   baseURL,
		sessionID: sessionID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Do sends body as JSON and decodes the response into out when out is not nil.
func (c *TestClient) Do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.sessionID != "" {
		req.Header.Set(middleware.SessionHeader, c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
