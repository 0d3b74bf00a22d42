// Package api wraps the remote LearnHub HTTP API. Every request flows through
// the authorizing transport; failures are classified at this boundary and the
// classified error is returned to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/learnhub-portal/internal/config"
	"github.com/spec-kit/learnhub-portal/internal/transport"
)

// Client is a typed client for the LearnHub API.
type Client struct {
	baseURL    string
	http       *http.Client
	classifier *transport.Classifier
	logger     *zap.Logger
}

// NewClient builds the client. httpClient should carry the authorizing
// round tripper.
func NewClient(cfg config.APIConfig, httpClient *http.Client, classifier *transport.Classifier, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if httpClient.Timeout == 0 {
		httpClient.Timeout = cfg.RequestTimeout()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		http:       httpClient,
		classifier: classifier,
		logger:     logger,
	}
}

// do performs one API call. out, when non-nil, receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.classifier.Classify(url, 0, nil, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.classifier.Classify(url, 0, nil, err)
	}

	if err := c.classifier.Classify(url, resp.StatusCode, data, nil); err != nil {
		c.logger.Debug("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}
