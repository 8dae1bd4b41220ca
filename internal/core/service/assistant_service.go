package service

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

type snapshotSource interface {
	Snapshot(ctx context.Context) (ports.Snapshot, error)
}

type settingsReader interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// AssistantService feeds the current user's figures to a Responder.
type AssistantService struct {
	ledger    snapshotSource
	settings  settingsReader
	responder ports.Responder
	logger    zerolog.Logger
}

var _ ports.AssistantService = (*AssistantService)(nil)

func NewAssistantService(ledger snapshotSource, settings settingsReader, responder ports.Responder, logger zerolog.Logger) *AssistantService {
	return &AssistantService{ledger: ledger, settings: settings, responder: responder, logger: logger}
}

func (s *AssistantService) Ask(ctx context.Context, query string) (*ports.Answer, error) {
	snap, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	snap.Hidden = settings.PrivateMode

	answer := s.responder.Respond(query, snap)
	s.logger.Debug().Str("intent", answer.Intent).Int("query_len", utf8.RuneCountInString(query)).Msg("assistant answered")
	return &answer, nil
}
