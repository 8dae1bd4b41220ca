package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// SettingsService persists display settings per user.
type SettingsService struct {
	store   ports.Store
	session sessionSource
	logger  zerolog.Logger
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(store ports.Store, session sessionSource, logger zerolog.Logger) *SettingsService {
	return &SettingsService{store: store, session: session, logger: logger}
}

// Get returns the stored settings, or the defaults when none were saved.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	user, err := s.session.Current()
	if err != nil {
		return nil, err
	}
	var settings domain.Settings
	if _, err := loadJSON(ctx, s.store, ports.SettingsKey(user.ID), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsService) Toggle(ctx context.Context, name string) (*domain.Settings, error) {
	user, err := s.session.Current()
	if err != nil {
		return nil, err
	}
	var settings domain.Settings
	if _, err := loadJSON(ctx, s.store, ports.SettingsKey(user.ID), &settings); err != nil {
		return nil, err
	}
	if !settings.Toggle(name) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSetting, name)
	}
	if err := saveJSON(ctx, s.store, ports.SettingsKey(user.ID), settings); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("setting", name).Interface("settings", settings).Msg("setting toggled")
	return &settings, nil
}
