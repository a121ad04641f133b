package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"healthai/internal/config"
	"healthai/internal/core"
	"healthai/internal/db"
	httpserver "healthai/internal/http"
	"healthai/internal/llm"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialise generator: %v", err)
	}
	responder := core.NewResponder(gen)

	// History is optional; without DATABASE_URL nothing is stored.
	var history httpserver.HistoryStore
	if cfg.DatabaseURL != "" {
		dbConn, err := openDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer dbConn.Close()
		history = db.NewRepository(dbConn)
		log.Println("Consultation history enabled")
	}

	srv, err := httpserver.NewServer(responder, history, cfg.HistoryLimit)
	if err != nil {
		log.Fatalf("failed to construct server: %v", err)
	}

	// Generation can take a while on CPU-only model servers, so there is no
	// write timeout.
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		log.Printf("Listening on %s (generator: %s)", httpServer.Addr, cfg.Generator)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}

// newGenerator builds the strategy selected by GENERATOR.  The model client
// is created once here and shared by every request.
func newGenerator(ctx context.Context, cfg *config.Config) (core.Generator, error) {
	if cfg.Generator == config.GeneratorSimulated {
		return core.NewSimulatedGenerator(cfg.SimulatedDelay), nil
	}
	var client llm.Client
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		c, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey:  cfg.GoogleAPIKey,
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
		})
		if err != nil {
			return nil, err
		}
		client = c
		log.Printf("Using Gemini model %s", cfg.GeminiModel)
	default:
		client = llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.LLMModel,
			Echo:    cfg.LLMEchoPrompt,
		})
		log.Printf("Using completions model %s", cfg.LLMModel)
	}
	return &core.ModelGenerator{
		LLM:            client,
		MaxInputTokens: cfg.MaxInputTokens,
		MaxLength:      cfg.MaxLength(),
		Temperature:    cfg.Temperature,
	}, nil
}

func openDatabase(url string) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbConn.PingContext(ctx); err != nil {
		dbConn.Close()
		return nil, err
	}
	if err := db.Migrate(ctx, dbConn); err != nil {
		dbConn.Close()
		return nil, err
	}
	return dbConn, nil
}
