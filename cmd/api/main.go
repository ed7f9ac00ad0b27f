package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fysioscribe/dcsph-engine/internal/api"
	"github.com/fysioscribe/dcsph-engine/internal/config"
	"github.com/fysioscribe/dcsph-engine/internal/conversation"
	"github.com/fysioscribe/dcsph-engine/internal/llm"
	"github.com/fysioscribe/dcsph-engine/internal/memory"
	"github.com/fysioscribe/dcsph-engine/internal/resolver"
)

// #region main

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[API] load .env: %v", err)
	}
	cfg := config.Load()

	if cfg.ModelAPIKey == "" {
		log.Fatal("DCSPH_MODEL_API_KEY is required")
	}
	generator, err := llm.NewClient(cfg.ModelAPIKey, cfg.ModelName, llm.WithBaseURL(cfg.ModelBaseURL))
	if err != nil {
		log.Fatalf("build model client: %v", err)
	}

	ledger, err := memory.Open(cfg.LedgerPath)
	if err != nil {
		log.Fatalf("open ledger %s: %v", cfg.LedgerPath, err)
	}
	defer ledger.Close()

	conversations := conversation.NewStore(nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go conversations.RunSweeper(ctx, cfg.SweepInterval)

	orchestrator := resolver.New(generator, conversations, ledger, resolver.Options{
		FallbackDiscount: cfg.FallbackDiscount,
		EnrichmentBoost:  cfg.EnrichmentBoost,
		RetryBackoffBase: cfg.RetryBackoffBase,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewServer(orchestrator).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[API] shutdown: %v", err)
		}
	}()

	log.Printf("[API] listening on %s (model %s, ledger %s)", cfg.ListenAddr, cfg.ModelName, cfg.LedgerPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion
