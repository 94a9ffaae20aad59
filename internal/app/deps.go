package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"resume-fit/internal/analyzer"
	"resume-fit/internal/cache"
	"resume-fit/internal/config"
	"resume-fit/internal/llm"
	"resume-fit/internal/logger"
)

// Deps bundles common runtime dependencies for services.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	LLM      llm.Client
	Cache    cache.Cache
	Analyzer *analyzer.Analyzer
}

// Build loads env, config, and shared components. A missing .env file is
// fine; a missing API key is reported per request rather than at startup.
func Build(ctx context.Context) (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	llmClient, err := buildLLM(ctx, cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	c, err := buildCache(ctx, cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return Deps{
		Config: cfg,
		Log:    log,
		LLM:    llmClient,
		Cache:  c,
		Analyzer: analyzer.New(llmClient, c, log, analyzer.Options{
			Strict:   cfg.StrictSchema,
			CacheTTL: cfg.CacheTTL,
		}),
	}, nil
}

func buildLLM(ctx context.Context, cfg config.Config, log *slog.Logger) (llm.Client, error) {
	settings := llm.Settings{
		Model:           cfg.LLMModel,
		Temperature:     cfg.LLMTemperature,
		TopP:            cfg.LLMTopP,
		MaxOutputTokens: cfg.LLMMaxOutputTokens,
	}
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiKey == "" {
			log.Warn("GEMINI_API_KEY is not set; analysis requests will fail with 503")
			return llm.NewUnconfigured(cfg.APIKeyEnv(), cfg.LLMModel), nil
		}
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiKey, settings)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini LLM client", "model", client.Model())
		return client, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			log.Warn("OPENAI_API_KEY is not set; analysis requests will fail with 503")
			return llm.NewUnconfigured(cfg.APIKeyEnv(), cfg.LLMModel), nil
		}
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, settings)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM client", "model", client.Model())
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: gemini, openai)", cfg.LLMProvider)
	}
}

func buildCache(ctx context.Context, cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "", "none":
		log.Info("result cache disabled")
		return cache.NewNoOpCache(), nil
	case "redis":
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Warn("redis unavailable, continuing without cache", "addr", cfg.RedisAddr, "err", err)
			return cache.NewNoOpCache(), nil
		}
		log.Info("using Redis cache", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		return rc, nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: none, redis)", cfg.CacheProvider)
	}
}
