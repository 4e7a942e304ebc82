package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Target is one monitored endpoint, declared as "name=url" in CHECK_TARGETS.
type Target struct {
	Name string
	URL  string
}

// Config contains runtime configuration values.
type Config struct {
	ChatWebhookURL string
	ScheduleCron   string
	RequestTimeout time.Duration
	Targets        []Target
	DashboardURL   string
	CardTitle      string
	ListenAddr     string
	GeminiAPIKey   string
	GeminiModel    string
}

const (
	defaultCron        = "0 9 * * *" // 09:00 every day
	defaultTimeout     = 30 * time.Second
	defaultCardTitle   = "Service Status"
	defaultListenAddr  = ":8080"
	defaultGeminiModel = "gemini-2.5-flash"
)

// Load builds a Config from environment variables with sane defaults. The
// webhook URL is deliberately not required here: previewing a card needs no
// webhook, and delivery fails with a dedicated error when none is resolvable.
func Load() (*Config, error) {
	// .env is optional — env vars may already be set (e.g. in production)
	_ = godotenv.Load()

	targets, err := parseTargets(os.Getenv("CHECK_TARGETS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ChatWebhookURL: os.Getenv("CHAT_WEBHOOK_URL"),
		ScheduleCron:   getenvDefault("SCHEDULE_CRON", defaultCron),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		Targets:        targets,
		DashboardURL:   os.Getenv("DASHBOARD_URL"),
		CardTitle:      getenvDefault("CARD_TITLE", defaultCardTitle),
		ListenAddr:     getenvDefault("LISTEN_ADDR", defaultListenAddr),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenvDefault("GEMINI_MODEL", defaultGeminiModel),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

// parseTargets splits "api=https://a.example,web=https://b.example" into
// named targets. A bare URL with no name uses its host-ish prefix as-is.
func parseTargets(raw string) ([]Target, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	entries := strings.Split(raw, ",")
	targets := make([]Target, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, url, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("CHECK_TARGETS entry %q: expected name=url", entry)
		}
		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if name == "" || url == "" {
			return nil, fmt.Errorf("CHECK_TARGETS entry %q: expected name=url", entry)
		}
		targets = append(targets, Target{Name: name, URL: url})
	}
	return targets, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
