// FILE: pkg/n8n/gateway.go
// PURPOSE: Gateway to the n8n workflow engine. Best effort: every failure is
// folded into a tagged Result, nothing propagates as a hard error.
package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"chatai-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const (
	healthCacheKey = "n8n_health"
	healthCacheTTL = 30 * time.Second
	healthTimeout  = 5 * time.Second
)

// Result is the tagged outcome of a webhook call.
type Result struct {
	Success    bool
	Data       map[string]interface{}
	StatusCode int
	Error      string
}

type Gateway interface {
	SendChatInput(ctx context.Context, chatInput string) Result
	CheckHealth() bool
}

type Client struct {
	baseURL     string
	webhookURL  string
	timeout     time.Duration
	httpClient  *http.Client
	healthCache *cache.Cache
	log         logger.ILogger
}

func NewClient(baseURL, webhookPath string, timeoutSeconds int, log logger.ILogger) *Client {
	timeout := time.Duration(timeoutSeconds) * time.Second
	return &Client{
		baseURL:     baseURL,
		webhookURL:  baseURL + webhookPath,
		timeout:     timeout,
		httpClient:  &http.Client{Timeout: timeout},
		healthCache: cache.New(healthCacheTTL, healthCacheTTL),
		log:         log,
	}
}

// SendChatInput posts the user's raw text to the workflow webhook.
func (c *Client) SendChatInput(ctx context.Context, chatInput string) Result {
	payload := map[string]string{"chatInput": chatInput}
	body, err := json.Marshal(payload)
	if err != nil {
		return c.failure(fmt.Sprintf("Unexpected error communicating with n8n: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return c.failure(fmt.Sprintf("Unexpected error communicating with n8n: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return c.classifyTransportError(err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return c.failure(fmt.Sprintf("Unexpected error communicating with n8n: %v", err))
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := fmt.Sprintf("n8n HTTP error: %d - %s", res.StatusCode, string(resBody))
		c.log.Error("n8n", "webhook returned non-2xx status", map[string]interface{}{
			"status": res.StatusCode,
		})
		return Result{Success: false, Error: msg, StatusCode: res.StatusCode}
	}

	var data map[string]interface{}
	if err := json.Unmarshal(resBody, &data); err != nil {
		// Not JSON: wrap the raw text instead of failing.
		c.log.Warn("n8n", "webhook response is not valid JSON", nil)
		data = map[string]interface{}{"response": string(resBody)}
	}

	return Result{Success: true, Data: data, StatusCode: res.StatusCode}
}

func (c *Client) classifyTransportError(err error) Result {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return c.failure(fmt.Sprintf("Timeout connecting to n8n (>%ds)", int(c.timeout.Seconds())))
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return c.failure("Connection error with n8n. Check that the service is running.")
	}
	return c.failure(fmt.Sprintf("Unexpected error communicating with n8n: %v", err))
}

func (c *Client) failure(msg string) Result {
	c.log.Error("n8n", msg, nil)
	return Result{Success: false, Error: msg}
}

// CheckHealth probes the base URL. 404 is tolerated because the root path may
// be unmapped on the workflow engine. The verdict is memoized briefly so the
// health endpoint does not hammer n8n.
func (c *Client) CheckHealth() bool {
	if cached, found := c.healthCache.Get(healthCacheKey); found {
		return cached.(bool)
	}

	healthy := c.probe()
	c.healthCache.Set(healthCacheKey, healthy, healthCacheTTL)
	return healthy
}

func (c *Client) probe() bool {
	client := &http.Client{Timeout: healthTimeout}
	res, err := client.Get(c.baseURL)
	if err != nil {
		c.log.Warn("n8n", "health check failed", map[string]interface{}{"error": err.Error()})
		return false
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusFound, http.StatusNotFound:
		return true
	default:
		return false
	}
}
