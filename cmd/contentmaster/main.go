// Command contentmaster generates social-media content strategies from brand
// positioning inputs. It runs either as a one-shot CLI (flags for the four
// positioning fields, report printed to stdout) or as an HTTP service
// (-serve).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Terresapan/static-content/brainstorm"
	"github.com/Terresapan/static-content/brandsite"
	"github.com/Terresapan/static-content/core/client"
	"github.com/Terresapan/static-content/core/client/middleware"
	"github.com/Terresapan/static-content/internal/config"
	"github.com/Terresapan/static-content/providers/ai"
	"github.com/Terresapan/static-content/providers/ai/anthropic"
	"github.com/Terresapan/static-content/providers/ai/groq"
	"github.com/Terresapan/static-content/providers/ai/openai"
	"github.com/Terresapan/static-content/server"
)

func main() {
	var (
		configPath     = flag.String("config", "", "path to config.yaml (optional)")
		serve          = flag.Bool("serve", false, "run the HTTP server instead of a one-shot brainstorm")
		coreValue      = flag.String("core-value", "", "primary value the business offers")
		targetAudience = flag.String("target-audience", "", "who the brand is trying to reach")
		persona        = flag.String("persona", "", "character and image the brand projects")
		monetization   = flag.String("monetization", "", "how the business generates revenue")
		brandURL       = flag.String("brand-url", "", "brand website to fetch as extra prompt context (optional)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *serve, brainstorm.Positioning{
		CoreValue:      *coreValue,
		TargetAudience: *targetAudience,
		Persona:        *persona,
		Monetization:   *monetization,
	}, *brandURL, logger); err != nil {
		logger.Error("fatal", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(configPath string, serve bool, positioning brainstorm.Positioning, brandURL string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	provider, err := buildProvider(cfg.Provider)
	if err != nil {
		return err
	}

	aiClient, err := client.New(provider,
		client.WithModel(cfg.Model),
		client.WithGenerationConfig(ai.GenerationConfig{
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}),
		client.WithMiddlewares(
			middleware.NewLoggingMiddleware(logger, logLevelFromConfig(cfg.LogLevel)),
			middleware.NewTimeoutMiddleware(cfg.RequestTimeout),
		),
	)
	if err != nil {
		return err
	}

	runner, err := brainstorm.NewRunner(aiClient, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serve {
		srv, err := server.New(runner, brandsite.NewFetcher(), logger)
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx, cfg.Addr)
	}

	if brandURL != "" {
		brandContext, err := brandsite.NewFetcher().FetchContext(ctx, brandURL)
		if err != nil {
			logger.Warn("brand site fetch failed", slog.String("error", err.Error()))
		} else {
			positioning.BrandContext = brandContext
		}
	}

	state, err := runner.Run(ctx, positioning)
	if err != nil {
		return err
	}

	fmt.Print(brainstorm.Markdown(brainstorm.BuildReport(state)))
	return nil
}

func buildProvider(name string) (ai.Provider, error) {
	switch name {
	case "groq":
		return groq.NewGroqProvider(), nil
	case "openai":
		return openai.NewOpenAIProvider(), nil
	case "anthropic":
		return anthropic.NewAnthropicProvider(), nil
	}
	return nil, fmt.Errorf("unknown provider %q", name)
}

func logLevelFromConfig(level string) middleware.LogLevel {
	switch level {
	case "minimal":
		return middleware.LogLevelMinimal
	case "verbose":
		return middleware.LogLevelVerbose
	}
	return middleware.LogLevelStandard
}
