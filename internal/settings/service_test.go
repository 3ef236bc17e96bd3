package settings

import (
	"context"
	"testing"

	"github.com/boaziz1447-maker/omar-alessa/internal/store"
)

// memRepo is an in-memory SettingsRepo for tests.
type memRepo struct {
	stored store.Settings
}

func (m *memRepo) Load(context.Context) (store.Settings, error) { return m.stored, nil }
func (m *memRepo) Save(_ context.Context, s store.Settings) error {
	m.stored = s
	return nil
}
func (m *memRepo) Set(_ context.Context, key, value string) error { return nil }
func (m *memRepo) Delete(_ context.Context, key string) error     { return nil }

func TestVerifyPIN(t *testing.T) {
	svc := NewService(&memRepo{})

	if !svc.VerifyPIN("1408") {
		t.Error("correct PIN rejected")
	}
	for _, pin := range []string{"", "0000", "14080", "١٤٠٨"} {
		if svc.VerifyPIN(pin) {
			t.Errorf("PIN %q accepted", pin)
		}
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	svc := NewService(&memRepo{})

	s, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.CustomLogo != DefaultCustomLogo || s.MoeLogo != DefaultMoeLogo || s.RabbitLogo != DefaultRabbitLogo {
		t.Errorf("logos = %+v, want platform defaults", s)
	}
	if s.APIKey != "" {
		t.Errorf("api key = %q, want empty", s.APIKey)
	}
}

func TestSavePartialUpdate(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	s, err := svc.Save(ctx, Partial{APIKey: String("sk-123")})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.APIKey != "sk-123" {
		t.Errorf("api key = %q", s.APIKey)
	}
	if s.MoeLogo != DefaultMoeLogo {
		t.Error("untouched logo must keep its default")
	}

	// A later partial update must not clobber the key.
	s, err = svc.Save(ctx, Partial{CustomLogo: String("data:image/png;base64,AA")})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.APIKey != "sk-123" {
		t.Errorf("api key lost: %q", s.APIKey)
	}
	if s.CustomLogo != "data:image/png;base64,AA" {
		t.Errorf("custom logo = %q", s.CustomLogo)
	}
}

func TestSaveDefaultClearsOverride(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Save(ctx, Partial{RabbitLogo: String("data:image/png;base64,BB")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if repo.stored.RabbitLogo == "" {
		t.Fatal("override not stored")
	}

	// Resetting back to the platform default removes the stored row.
	s, err := svc.Save(ctx, Partial{RabbitLogo: String(DefaultRabbitLogo)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if repo.stored.RabbitLogo != "" {
		t.Errorf("stored override = %q, want cleared", repo.stored.RabbitLogo)
	}
	if s.RabbitLogo != DefaultRabbitLogo {
		t.Errorf("effective logo = %q", s.RabbitLogo)
	}
}
