package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/obiente/translate/gotranslator/internal/config"
	"github.com/obiente/translate/gotranslator/internal/engine"
	serverhttp "github.com/obiente/translate/gotranslator/internal/http"
	"github.com/obiente/translate/gotranslator/internal/langdetect"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	lvl := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if l, err := zerolog.ParseLevel(v); err == nil {
			lvl = l
		}
	}
	log.Logger = log.Level(lvl)

	cfg := config.Load()
	registry := engine.NewRegistry(buildEngine(cfg))
	classifier := langdetect.NewClassifier(cfg.SourceLang, langdetect.NewLinguaDetector())

	if cfg.UseMockEngine {
		log.Info().Msg("running in mock mode, no model client will be created")
	} else {
		// Warm the engine without blocking startup; the first translation
		// retries initialization if this fails.
		go func() {
			if _, err := registry.Acquire(); err != nil {
				log.Warn().Err(err).Msg("engine pre-load failed")
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      serverhttp.NewRouter(cfg, registry, classifier),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr).Bool("mock", cfg.UseMockEngine).Msg("translator server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func buildEngine(cfg config.Config) func() (engine.Engine, error) {
	if cfg.UseMockEngine {
		return func() (engine.Engine, error) {
			return &engine.Mock{Delay: 100 * time.Millisecond}, nil
		}
	}
	return func() (engine.Engine, error) {
		return engine.NewOpenAI(engine.OpenAIOptions{
			APIKey:     cfg.OpenAIAPIKey,
			BaseURL:    cfg.OpenAIBaseURL,
			Model:      cfg.OpenAIModel,
			SourceLang: cfg.SourceLang,
			TargetLang: cfg.TargetLang,
		})
	}
}
