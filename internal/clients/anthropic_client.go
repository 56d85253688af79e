package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/matpia/sentiment-api/internal/apperrors"
	"github.com/matpia/sentiment-api/internal/models"
)

const (
	ANTHROPIC_MESSAGES_ENDPOINT = "https://api.anthropic.com/v1/messages"
	anthropicVersion            = "2023-06-01"
)

var (
	anthropicInstance *AnthropicClient
	anthropicOnce     sync.Once
)

type AnthropicClient struct {
	Client   *http.Client
	endpoint string
	apiKey   string
}

func GetAnthropicClient() *AnthropicClient {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		slog.Error("[AnthropicClient] Missing ANTHROPIC_API_KEY in environment variables")
		panic("[AnthropicClient] Missing ANTHROPIC_API_KEY in environment variables")
	}
	anthropicOnce.Do(func() {
		endpoint := os.Getenv("ANTHROPIC_API_URL")
		if endpoint == "" {
			endpoint = ANTHROPIC_MESSAGES_ENDPOINT
		}

		slog.Info("[AnthropicClient] Initializing Client",
			slog.String("endpoint", endpoint),
			slog.Duration("timeout", ANTHROPIC_REQUEST_TIMEOUT))
		anthropicInstance = &AnthropicClient{
			Client: &http.Client{
				Timeout: ANTHROPIC_REQUEST_TIMEOUT,
			},
			endpoint: endpoint,
			apiKey:   apiKey,
		}
	})
	return anthropicInstance
}

// CreateMessage performs the single classification call for one text. Any
// transport failure or non-success status surfaces as an upstream error and
// is never retried.
func (a *AnthropicClient) CreateMessage(ctx context.Context, payload models.AnthropicRequest) (models.AnthropicResponse, error) {
	var reply models.AnthropicResponse

	body, err := json.Marshal(payload)
	if err != nil {
		return reply, apperrors.NewInternalError("Failed to marshal Anthropic payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return reply, apperrors.NewInternalError("Failed to build Anthropic request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	start := time.Now()
	resp, err := a.Client.Do(req)
	if err != nil {
		slog.Error("[AnthropicClient] Request failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return reply, apperrors.NewUpstreamError("Failed to get response from Anthropic API", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return reply, apperrors.NewUpstreamError("Failed to read Anthropic response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("[AnthropicClient] Non-success status from Anthropic API",
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return reply, apperrors.NewUpstreamError(
			fmt.Sprintf("Anthropic API returned status %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(respBody, &reply); err != nil {
		slog.Error("[AnthropicClient] Failed to unmarshal response envelope",
			slog.String("error", err.Error()),
			getPreview(respBody))
		return reply, apperrors.NewUpstreamError("Failed to decode Anthropic response envelope", err)
	}

	slog.Info("[AnthropicClient] Message request successful",
		slog.Duration("elapsed", time.Since(start)))
	return reply, nil
}

// getPreview keeps error logs readable when the upstream body is large.
func getPreview(body []byte) slog.Attr {
	const previewLen = 200
	preview := string(body)
	if len(preview) > previewLen {
		preview = preview[:previewLen] + "..."
	}
	return slog.String("body_preview", preview)
}
