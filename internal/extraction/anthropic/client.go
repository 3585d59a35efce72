package anthropic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/extraction"
)

// Extract implements extraction.Extractor against the Anthropic Messages API.
// The document goes up as a single base64 content block (image or PDF) with
// the fixed extraction instruction; the reply must be one JSON object.
func (c *Client) Extract(ctx context.Context, fileBytes []byte, mimeType string) (json.RawMessage, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("extraction.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"mime", mimeType,
		"bytes", len(fileBytes),
	)

	source := map[string]any{
		"type":       "base64",
		"media_type": mimeType,
		"data":       base64.StdEncoding.EncodeToString(fileBytes),
	}
	var docBlock map[string]any
	if mimeType == "application/pdf" {
		docBlock = map[string]any{"type": "document", "source": source}
	} else {
		docBlock = map[string]any{"type": "image", "source": source}
	}

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.MaxTokens,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					docBlock,
					{"type": "text", "text": extraction.InvoicePrompt},
				},
			},
		},
	}

	raw, err := c.post(ctx, strings.TrimRight(c.cfg.BaseURL, "/")+"/messages", body)
	if err != nil {
		c.logger.Error("extraction.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var msg struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.logger.Error("extraction.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, common.NewAppError("EXTRACTION_DECODE", "decode messages response", common.ErrExtractionMalformed)
	}
	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	content := []byte(stripCodeFences(text))
	if len(bytes.TrimSpace(content)) == 0 {
		c.logger.Error("extraction.empty_response",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, common.NewAppError("EXTRACTION_EMPTY", "model returned no text content", common.ErrExtractionMalformed)
	}

	if err := extraction.ValidateExtraction(content); err != nil {
		c.logger.Error("extraction.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, common.NewAppError("EXTRACTION_SCHEMA", err.Error(), common.ErrExtractionMalformed)
	}

	c.logger.Info("extraction.ok",
		"req_id", rid,
		"content_bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// timeouts and transport failures are retryable by the caller
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, common.NewAppError("EXTRACTION_HTTP", err.Error(), common.ErrExtractionTransient)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("anthropic response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return buf.Bytes(), nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, common.NewAppError("EXTRACTION_HTTP",
			fmt.Sprintf("anthropic status %d: %s", resp.StatusCode, buf.String()), common.ErrExtractionTransient)
	default:
		// 4xx: the request itself is bad (corrupt or unreadable document);
		// retrying the same bytes cannot succeed.
		return nil, common.NewAppError("EXTRACTION_HTTP",
			fmt.Sprintf("anthropic status %d: %s", resp.StatusCode, buf.String()), common.ErrExtractionUnsupported)
	}
}

// stripCodeFences unwraps ```json ... ``` that some model replies add around
// the payload.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
