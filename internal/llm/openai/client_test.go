package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/llm"
)

func writeTestJPEG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil))
	require.NoError(t, f.Close())
	return path
}

func chatReply(t *testing.T, content string) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return raw
}

const oneOfferContent = `{"offers": [{"storeName": "Rewe", "productName": "Coffee", "brand": "Dallmayr", "quantity": "500g", "price": 4.99, "originalPrice": "6.49", "offerDateStart": "2026-08-24", "offerDateEnd": "2026-08-30"}]}`

func TestExtractOffersRequestShape(t *testing.T) {
	imagePath := writeTestJPEG(t)
	var captured map[string]any
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatReply(t, oneOfferContent))
	}))
	defer srv.Close()

	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}, nil)

	offers, _, err := c.ExtractOffers(context.Background(), imagePath)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Coffee", offers[0].ProductName)

	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "gpt-4o-mini", captured["model"])

	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	user := messages[1].(map[string]any)
	assert.Equal(t, "user", user["role"])

	parts := user["content"].([]any)
	require.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0].(map[string]any)["type"])
	imagePart := parts[1].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	url := imagePart["image_url"].(map[string]any)["url"].(string)
	require.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"), "image must be an inline jpeg data URL")

	imgBytes, err := os.ReadFile(imagePath)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	assert.Equal(t, imgBytes, decoded)

	rf := captured["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", rf["type"])
	js := rf["json_schema"].(map[string]any)
	assert.Equal(t, llm.SchemaName, js["name"])
	assert.Equal(t, true, js["strict"])
	schema := js["schema"].(map[string]any)
	assert.Equal(t, false, schema["additionalProperties"])
}

func TestExtractOffersStripsCodeFence(t *testing.T) {
	imagePath := writeTestJPEG(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(chatReply(t, "```json\n"+oneOfferContent+"\n```"))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	offers, _, err := c.ExtractOffers(context.Background(), imagePath)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Rewe", offers[0].StoreName)
}

func TestExtractOffersUpstreamFailure(t *testing.T) {
	imagePath := writeTestJPEG(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, raw, err := c.ExtractOffers(context.Background(), imagePath)
	require.Error(t, err)
	assert.Equal(t, common.KindUpstream, common.KindOf(err))
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, string(raw), "rate limit exceeded")
}

func TestExtractOffersTransportFailure(t *testing.T) {
	imagePath := writeTestJPEG(t)

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractOffers(context.Background(), imagePath)
	require.Error(t, err)
	assert.Equal(t, common.KindUpstream, common.KindOf(err))
}

func TestExtractOffersNoChoices(t *testing.T) {
	imagePath := writeTestJPEG(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractOffers(context.Background(), imagePath)
	require.Error(t, err)
	assert.Equal(t, common.KindParse, common.KindOf(err))
}

func TestExtractOffersSchemaViolatingContent(t *testing.T) {
	imagePath := writeTestJPEG(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(chatReply(t, `{"offers": [{"storeName": "Rewe"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractOffers(context.Background(), imagePath)
	require.Error(t, err)
	assert.Equal(t, common.KindParse, common.KindOf(err))
}

func TestExtractOffersMissingImage(t *testing.T) {
	c := NewClient(Config{APIKey: "test-key", BaseURL: "http://127.0.0.1:0"}, nil)

	_, _, err := c.ExtractOffers(context.Background(), filepath.Join(t.TempDir(), "gone.jpg"))
	require.Error(t, err)
	assert.Equal(t, common.KindIO, common.KindOf(err))
}
