package di

import (
	"log/slog"
	"os"

	"gchat-cardbot/internal/adapter/googlechat"
	"gchat-cardbot/internal/adapter/probe"
	"gchat-cardbot/internal/adapter/writing"
	"gchat-cardbot/internal/config"
	"gchat-cardbot/internal/domain/model"
	"gchat-cardbot/internal/domain/ports"
	"gchat-cardbot/internal/server"
	"gchat-cardbot/internal/usecase"
)

func provideSlogLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func provideStatusProvider(cfg *config.Config, logger ports.Logger) ports.StatusProvider {
	return probe.New(cfg.RequestTimeout, logger)
}

// provideSummaryWriter returns nil when Gemini is not configured; the digest
// then uses its computed fallback summary.
func provideSummaryWriter(cfg *config.Config, logger ports.Logger) ports.SummaryWriter {
	if cfg.GeminiAPIKey == "" {
		return nil
	}
	return writing.NewGeminiWriter(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.RequestTimeout, logger)
}

func provideSender(cfg *config.Config, logger ports.Logger) ports.CardSender {
	return googlechat.NewWebhook(cfg.ChatWebhookURL, cfg.RequestTimeout, logger)
}

func provideDigestConfig(cfg *config.Config) usecase.StatusDigestConfig {
	targets := make([]model.Target, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		targets = append(targets, model.Target{Name: t.Name, URL: t.URL})
	}
	return usecase.StatusDigestConfig{
		Targets:      targets,
		DashboardURL: cfg.DashboardURL,
		Title:        cfg.CardTitle,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}

func provideServer(cfg *config.Config, sender ports.CardSender, logger ports.Logger) *server.Server {
	return server.New(sender, logger, cfg.ListenAddr)
}
