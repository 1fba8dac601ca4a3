package n8n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

func newTestClient(baseURL string, timeoutSeconds int) *Client {
	return NewClient(baseURL, "/webhook-test/n8n/init", timeoutSeconds, testLogger{})
}

func TestSendChatInputSuccess(t *testing.T) {
	var gotPath, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"output":"the answer"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 5)
	res := client.SendChatInput(context.Background(), "question")

	require.True(t, res.Success)
	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, "the answer", res.Data["output"])
	assert.Equal(t, "/webhook-test/n8n/init", gotPath)
	assert.Equal(t, "application/json", gotContentType)
}

func TestSendChatInputNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text answer"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 5)
	res := client.SendChatInput(context.Background(), "question")

	// Non-JSON 2xx bodies are wrapped, not treated as failures.
	require.True(t, res.Success)
	assert.Equal(t, "plain text answer", res.Data["response"])
}

func TestSendChatInputHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 5)
	res := client.SendChatInput(context.Background(), "question")

	require.False(t, res.Success)
	assert.Equal(t, 500, res.StatusCode)
	assert.Contains(t, res.Error, "n8n HTTP error: 500")
}

func TestSendChatInputConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := newTestClient(srv.URL, 5)
	res := client.SendChatInput(context.Background(), "question")

	require.False(t, res.Success)
	assert.Equal(t, "Connection error with n8n. Check that the service is running.", res.Error)
}

func TestSendChatInputTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 1)
	res := client.SendChatInput(context.Background(), "question")

	require.False(t, res.Success)
	assert.Equal(t, "Timeout connecting to n8n (>1s)", res.Error)
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"200 is healthy", http.StatusOK, true},
		{"404 tolerated, root path may be unmapped", http.StatusNotFound, true},
		{"500 is unhealthy", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := newTestClient(srv.URL, 5)
			assert.Equal(t, tt.want, client.CheckHealth())
		})
	}
}

func TestCheckHealthMemoized(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 5)
	assert.True(t, client.CheckHealth())
	assert.True(t, client.CheckHealth())
	assert.True(t, client.CheckHealth())

	assert.Equal(t, 1, hits, "verdict should be served from cache")
}
