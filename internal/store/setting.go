package store

import (
	"context"
	"fmt"

	"github.com/boaziz1447-maker/omar-alessa/ent"
	"github.com/boaziz1447-maker/omar-alessa/ent/setting"
)

// Setting keys.
const (
	KeyAPIKey     = "api_key"
	KeyCustomLogo = "custom_logo"
	KeyMoeLogo    = "moe_logo"
	KeyRabbitLogo = "rabbit_logo"
)

// settingsRepo implements SettingsRepo using the ent client.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Load(ctx context.Context) (Settings, error) {
	rows, err := r.client.Setting.Query().All(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("query settings: %w", err)
	}

	var s Settings
	for _, row := range rows {
		switch row.Key {
		case KeyAPIKey:
			s.APIKey = row.Value
		case KeyCustomLogo:
			s.CustomLogo = row.Value
		case KeyMoeLogo:
			s.MoeLogo = row.Value
		case KeyRabbitLogo:
			s.RabbitLogo = row.Value
		}
	}
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s Settings) error {
	pairs := []struct {
		key   string
		value string
	}{
		{KeyAPIKey, s.APIKey},
		{KeyCustomLogo, s.CustomLogo},
		{KeyMoeLogo, s.MoeLogo},
		{KeyRabbitLogo, s.RabbitLogo},
	}
	for _, p := range pairs {
		if p.value == "" {
			if err := r.Delete(ctx, p.key); err != nil {
				return err
			}
			continue
		}
		if err := r.Set(ctx, p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	n, err := r.client.Setting.Update().
		Where(setting.KeyEQ(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Setting.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create setting %q: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Setting.Delete().
		Where(setting.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}
