package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the OpenAI client.
type Config struct {
	APIKey       string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL      string        // default https://api.openai.com/v1
	Model        string        // e.g., "gpt-4o-mini"
	SystemPrompt string        // extraction task description sent as the system message
	UserPrompt   string        // per-page task instructions sent next to the image
	Timeout      time.Duration // http client timeout
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = "You are an assistant that extracts retail offers from supermarket flyer pages. " +
			"Return ONLY JSON that matches the provided JSON schema."
	}
	if cfg.UserPrompt == "" {
		cfg.UserPrompt = "Extract all offers from this flyer page."
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}
