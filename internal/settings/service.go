// Package settings manages the platform configuration: the custom API
// key, the three logo slots and the admin PIN that guards them.
package settings

import (
	"context"
	"fmt"

	"github.com/boaziz1447-maker/omar-alessa/internal/store"
)

// Default logo URLs used until the teacher uploads their own.
const (
	DefaultMoeLogo    = "https://upload.wikimedia.org/wikipedia/en/d/d5/Saudi_Ministry_of_Education_Logo.svg"
	DefaultCustomLogo = "https://cdn-icons-png.flaticon.com/512/3426/3426653.png"
	DefaultRabbitLogo = "https://cdn-icons-png.flaticon.com/512/9374/9374940.png"
)

// adminPIN unlocks the settings panel.
const adminPIN = "1408"

// Settings is the effective platform configuration with defaults
// filled in for unset logo slots.
type Settings struct {
	APIKey     string
	CustomLogo string
	MoeLogo    string
	RabbitLogo string
}

// Partial is a settings update; nil fields are left untouched.
type Partial struct {
	APIKey     *string
	CustomLogo *string
	MoeLogo    *string
	RabbitLogo *string
}

// Service loads and saves platform settings through the store.
type Service struct {
	repo store.SettingsRepo
}

// NewService creates a settings service over the given repository.
func NewService(repo store.SettingsRepo) *Service {
	return &Service{repo: repo}
}

// VerifyPIN reports whether the given PIN unlocks the settings panel.
func (s *Service) VerifyPIN(pin string) bool {
	return pin == adminPIN
}

// Load returns the effective settings, substituting defaults for
// unset logos. The API key has no default.
func (s *Service) Load(ctx context.Context) (Settings, error) {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return withDefaults(stored), nil
}

// Save applies a partial update and returns the resulting effective
// settings. Setting a logo to its platform default clears the stored
// override.
func (s *Service) Save(ctx context.Context, p Partial) (Settings, error) {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	if p.APIKey != nil {
		stored.APIKey = *p.APIKey
	}
	if p.CustomLogo != nil {
		stored.CustomLogo = clearIfDefault(*p.CustomLogo, DefaultCustomLogo)
	}
	if p.MoeLogo != nil {
		stored.MoeLogo = clearIfDefault(*p.MoeLogo, DefaultMoeLogo)
	}
	if p.RabbitLogo != nil {
		stored.RabbitLogo = clearIfDefault(*p.RabbitLogo, DefaultRabbitLogo)
	}

	if err := s.repo.Save(ctx, stored); err != nil {
		return Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return withDefaults(stored), nil
}

func withDefaults(stored store.Settings) Settings {
	eff := Settings{
		APIKey:     stored.APIKey,
		CustomLogo: stored.CustomLogo,
		MoeLogo:    stored.MoeLogo,
		RabbitLogo: stored.RabbitLogo,
	}
	if eff.CustomLogo == "" {
		eff.CustomLogo = DefaultCustomLogo
	}
	if eff.MoeLogo == "" {
		eff.MoeLogo = DefaultMoeLogo
	}
	if eff.RabbitLogo == "" {
		eff.RabbitLogo = DefaultRabbitLogo
	}
	return eff
}

func clearIfDefault(value, def string) string {
	if value == def {
		return ""
	}
	return value
}

// String pins a string literal for use in a Partial.
func String(v string) *string { return &v }
