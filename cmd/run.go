package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/boaziz1447-maker/omar-alessa/internal/app"
	"github.com/boaziz1447-maker/omar-alessa/internal/llm"
	"github.com/boaziz1447-maker/omar-alessa/internal/settings"
	"github.com/boaziz1447-maker/omar-alessa/internal/store"
	"github.com/boaziz1447-maker/omar-alessa/internal/strategen"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, link string) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	settingsService := settings.NewService(st.SettingsRepo())

	opts := app.Options{
		Settings:  settingsService,
		Profiles:  st.ProfileRepo(),
		ShareLink: link,
	}

	provider, err := buildProvider(ctx, settingsService, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Strategy generation will be unavailable.")
	} else {
		opts.Generator = strategen.NewService(provider, strategen.DefaultConfig())
	}

	return app.Run(opts)
}

// buildProvider resolves the LLM configuration: explicit ALESSA_ env
// vars win, then standard provider key vars, then the API key saved
// from the settings screen (used as a Gemini key).
func buildProvider(ctx context.Context, settingsService *settings.Service, st *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()

	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		} else if current, err := settingsService.Load(ctx); err == nil && current.APIKey != "" {
			cfg = llm.DefaultConfig()
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = current.APIKey
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(ctx, cfg, st.EventRepo())
}
