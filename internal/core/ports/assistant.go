package ports

import (
	"context"

	"github.com/fintrack/personal-finance/internal/core/domain"
)

// Snapshot is everything a Responder may look at when answering.
type Snapshot struct {
	Summary      domain.Summary
	Transactions []domain.Transaction
	Challenge    domain.Challenge
	// Hidden masks figures in the answer (private mode).
	Hidden bool
}

// Answer is a responder's reply. Intent names the rule that produced it.
type Answer struct {
	Intent string
	Text   string
}

// Responder maps a free-text query to an answer. It never fails.
type Responder interface {
	Respond(query string, snap Snapshot) Answer
}

// AssistantService answers questions about the current user's finances.
type AssistantService interface {
	Ask(ctx context.Context, query string) (*Answer, error)
}

// SettingsService reads and toggles the current user's display settings.
type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Toggle(ctx context.Context, name string) (*domain.Settings, error)
}
