package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bnema/agent-dash-cli/internal/adapters/api"
	"github.com/bnema/agent-dash-cli/internal/adapters/notify"
	tokentoml "github.com/bnema/agent-dash-cli/internal/adapters/token/toml"
	"github.com/bnema/agent-dash-cli/internal/application"
	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/observability"
	"github.com/bnema/agent-dash-cli/internal/ports"
	"github.com/bnema/agent-dash-cli/internal/state"
)

const configDirName = ".adc"

type app struct {
	store       *state.Store
	client      *api.Client
	sessions    *application.SessionManager
	coordinator *application.Coordinator
	loader      *application.Loader
	notifier    *notify.Terminal
	log         *slog.Logger
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault("api.base_url", "http://localhost:3000/api")
	cfg.SetDefault("api.timeout", "30s")
	cfg.SetDefault("upload.max_bytes", int64(api.DefaultMaxUploadBytes))
	cfg.SetDefault("token.path", filepath.Join(homeDir, configDirName, "token.toml"))
	cfg.SetDefault("log.level", "warn")
	cfg.SetEnvPrefix("ADC")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	logger := observability.NewLogger(parseLevel(cfg.GetString("log.level")))
	store := state.NewStore()
	notifier := notify.NewTerminal(os.Stderr)
	tokens := tokentoml.NewStore(cfg.GetString("token.path"))

	sessions := application.NewSessionManager(store, tokens, notifier, notifier, logger)
	client := api.NewClient(api.Config{
		BaseURL:        cfg.GetString("api.base_url"),
		HTTPClient:     &http.Client{Timeout: cfg.GetDuration("api.timeout")},
		Token:          sessions.Token,
		OnUnauthorized: sessions.Invalidate,
		MaxUploadBytes: cfg.GetInt64("upload.max_bytes"),
		Logger:         logger,
	})
	sessions.Bind(client)

	return &app{
		store:       store,
		client:      client,
		sessions:    sessions,
		coordinator: application.NewCoordinator(store, client, notifier, ports.SystemClock{}, logger),
		loader:      application.NewLoader(store, client),
		notifier:    notifier,
		log:         logger,
	}, nil
}

// requireSession restores the session from the persisted token slot; every
// authenticated command calls it first.
func (a *app) requireSession(ctx context.Context) error {
	if derr := a.sessions.Restore(ctx); derr != nil {
		return derr
	}
	if a.sessions.Current() == nil {
		return domain.ErrNoSession
	}
	return nil
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelWarn
	}
	return level
}
