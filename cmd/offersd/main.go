package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/export"
	"github.com/flyerscan/offers-tracker/internal/llm/openai"
	"github.com/flyerscan/offers-tracker/internal/offers"
	"github.com/flyerscan/offers-tracker/internal/pdf"
	"github.com/flyerscan/offers-tracker/internal/pipeline"
	"github.com/flyerscan/offers-tracker/internal/repository"
	"github.com/flyerscan/offers-tracker/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	offerRepo := repository.NewOfferRepository(entc, logger)
	saver := offers.NewSaver(offerRepo, logger)
	offersSvc := offers.NewService(offerRepo, logger)
	exportSvc := export.NewService(offerRepo, logger)

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
	processor := pipeline.NewProcessor(chunker, rasterizer, extractor, saver, cfg.Pipeline.TempDir, logger)

	api := server.New(processor, offersSvc, exportSvc, cfg.Server.MaxUploadMB, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: api.Routes(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	logger.Info("stopped")
}
