// Command extract runs the chunk→render→extract stages on a local PDF and
// prints the offers as JSON, without touching a database. Useful for prompt
// and schema tuning.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/llm"
	"github.com/flyerscan/offers-tracker/internal/llm/openai"
	"github.com/flyerscan/offers-tracker/internal/pdf"
	"github.com/flyerscan/offers-tracker/internal/pipeline"
)

// printSink collects candidates instead of persisting them.
type printSink struct {
	offers []llm.OfferFields
	logger *slog.Logger
}

func (s *printSink) SaveAll(_ context.Context, candidates []llm.OfferFields, sourceFile string) error {
	if len(candidates) == 0 {
		s.logger.Warn("offers.save.empty", "source_file", sourceFile)
		return nil
	}
	s.offers = append(s.offers, candidates...)
	return nil
}

func main() {
	_ = godotenv.Load()

	var (
		file  = flag.String("file", "", "path to the flyer PDF (required)")
		pages = flag.Int("pages", pipeline.DefaultPagesPerChunk, "pages per chunk")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *file == "" {
		logger.Error("usage: extract -file flyer.pdf [-pages 5]")
		os.Exit(2)
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	chunker := pdf.NewChunker(cfg.Pipeline.TempDir, logger)
	rasterizer := pdf.NewRasterizer(cfg.Pipeline.RenderDPI, cfg.Pipeline.JPEGQuality, cfg.Pipeline.TempDir, logger)
	extractor := openai.NewClient(openai.Config{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		Model:        cfg.LLM.Model,
		SystemPrompt: cfg.LLM.SystemPrompt,
		UserPrompt:   cfg.LLM.UserPrompt,
		Timeout:      cfg.LLM.Timeout,
	}, logger)

	sink := &printSink{logger: logger}
	processor := pipeline.NewProcessor(chunker, rasterizer, extractor, sink, cfg.Pipeline.TempDir, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("open pdf", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := processor.ProcessUpload(ctx, f, filepath.Base(*file), *pages); err != nil {
		logger.Error("pipeline failed", "kind", string(common.KindOf(err)), "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{"offers": sink.offers}); err != nil {
		logger.Error("encode offers", "error", err)
		os.Exit(1)
	}
}
