package openai

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/llm"
)

// ExtractOffers implements llm.OfferExtractor against chat/completions with an
// inline image and a strict json_schema response format. The call is a single
// synchronous round trip; a non-success status is surfaced as an UpstreamError
// with the upstream body attached and is never retried here.
func (c *Client) ExtractOffers(ctx context.Context, imagePath string) ([]llm.OfferFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image", filepath.Base(imagePath),
	)

	dataURL, err := llm.ReadAsDataURL(imagePath)
	if err != nil {
		c.log.Error("llm.extract.read_image_error", "req_id", rid, "error", err)
		return nil, nil, common.NewIOError("read page image", err)
	}

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{"role": "system", "content": c.cfg.SystemPrompt},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": c.cfg.UserPrompt},
				{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
			}},
		},
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   llm.SchemaName,
				"strict": true,
				"schema": llm.BuildOffersJSONSchema(),
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, status, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, common.NewUpstreamError(status, "request failed", err)
	}
	if status/100 != 2 {
		c.log.Error("llm.extract.upstream_error",
			"req_id", rid, "status", status, "body", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, common.NewUpstreamError(status, string(raw), nil)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, common.NewParseError("no valid answer received", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, common.NewParseError("no valid answer received: no choices", nil)
	}

	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))
	offers, err := llm.DecodeOffers(content)
	if err != nil {
		c.log.Error("llm.extract.parse_error",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, content, err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"image", filepath.Base(imagePath),
		"offers", len(offers),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return offers, content, nil
}
