package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kindred-wellness/prism/internal/analysis"
	"github.com/kindred-wellness/prism/internal/anthropic"
	"github.com/kindred-wellness/prism/internal/api"
	"github.com/kindred-wellness/prism/internal/bus"
	"github.com/kindred-wellness/prism/internal/chat"
	"github.com/kindred-wellness/prism/internal/config"
	"github.com/kindred-wellness/prism/internal/mirror"
	"github.com/kindred-wellness/prism/internal/processor"
	"github.com/kindred-wellness/prism/internal/social"
	"github.com/kindred-wellness/prism/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("prism starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	analyzer := analysis.New(analysis.DefaultVocabulary())
	slog.Info("analyzer ready", "vocab_version", analyzer.VocabVersion())

	// Database (optional — without it prism serves synchronous analysis only,
	// with no style cache)
	var db *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set — style cache and run log disabled")
	}

	var styleCache mirror.Cache
	var styleReader api.StyleReader
	var runWriter processor.RunWriter
	if db != nil {
		styleCache = db
		styleReader = db
		runWriter = db
	}

	m := mirror.New(analyzer, styleCache, slog.Default())

	// Coaching assistant (optional — without a key the chat route is disabled)
	var assistant api.Replier
	if cfg.AnthropicAPIKey != "" {
		llm := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, slog.Default())
		assistant = chat.New(llm, m, slog.Default())
		slog.Info("anthropic client ready", "model", cfg.AnthropicModel)
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set — chat assistant disabled")
	}

	// Social platform gateway (optional)
	var fetcher api.PostFetcher
	if cfg.SocialAPIToken != "" {
		fetcher = social.NewClient(cfg.SocialAPIBase, cfg.SocialAPIToken, slog.Default())
		slog.Info("social gateway client ready", "base", cfg.SocialAPIBase)
	} else {
		slog.Warn("SOCIAL_API_TOKEN not set — social fetch disabled")
	}

	// NATS (optional — without it the HTTP API still works, just no
	// event-driven pipeline)
	var events *bus.Client
	if cfg.NatsURL != "" {
		var err error
		events, err = bus.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer events.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)

		var pub processor.Publisher = events
		proc := processor.New(analyzer, m, runWriter, pub, slog.Default())

		if err := events.Subscribe(bus.SubjectChatMessageStored, proc.HandleChatMessage); err != nil {
			slog.Error("failed to subscribe to chat events", "error", err)
			os.Exit(1)
		}
		if err := events.Subscribe(bus.SubjectPostsFetched, proc.HandlePostsFetched); err != nil {
			slog.Error("failed to subscribe to post events", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("NATS_URL not set — running without event pipeline")
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, analyzer, styleReader, fetcher, assistant)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if events != nil {
		if err := events.Publish(bus.SubjectRegistered, map[string]any{
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
			"port":          cfg.Port,
			"vocab_version": analyzer.VocabVersion(),
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("prism ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("prism stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
