package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// BudgetLimits configures the monthly limit card and the savings challenge.
type BudgetLimits struct {
	MonthlyLimit      decimal.Decimal
	ChallengeCategory string
	ChallengeLimit    decimal.Decimal
}

func DefaultBudgetLimits() BudgetLimits {
	return BudgetLimits{
		MonthlyLimit:      decimal.NewFromInt(10_000_000),
		ChallengeCategory: "food",
		ChallengeLimit:    decimal.NewFromInt(2_000_000),
	}
}

type sessionSource interface {
	Current() (*domain.User, error)
}

// LedgerService records the current user's transactions. It keeps the loaded
// list in memory for the lifetime of the session and writes the whole list
// back on every change.
type LedgerService struct {
	store   ports.Store
	session sessionSource
	ids     *IDGenerator
	limits  BudgetLimits
	logger  zerolog.Logger
	now     func() time.Time

	mu    sync.Mutex
	owner string // user the cache belongs to; empty when nothing is cached
	cache []domain.Transaction
}

var (
	_ ports.LedgerService   = (*LedgerService)(nil)
	_ ports.SessionObserver = (*LedgerService)(nil)
)

func NewLedgerService(store ports.Store, session sessionSource, ids *IDGenerator, limits BudgetLimits, logger zerolog.Logger) *LedgerService {
	if ids == nil {
		ids = NewIDGenerator()
	}
	return &LedgerService{
		store:   store,
		session: session,
		ids:     ids,
		limits:  limits,
		logger:  logger,
		now:     time.Now,
	}
}

// SessionChanged drops the cache and, on login, preloads the new user's list.
func (s *LedgerService) SessionChanged(ctx context.Context, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner, s.cache = "", nil
	if user == nil {
		return
	}
	if _, err := s.loadLocked(ctx, user.ID); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("preload transactions")
	}
}

func (s *LedgerService) AddTransaction(ctx context.Context, in ports.AddTransactionInput) (*domain.Transaction, error) {
	if err := validateTransaction(in); err != nil {
		return nil, err
	}
	user, err := s.session.Current()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadLocked(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	tx := domain.Transaction{
		ID:       s.ids.Next(),
		Type:     in.Type,
		Amount:   in.Amount,
		Category: in.Category,
		Date:     date,
		Note:     in.Note,
	}

	updated := make([]domain.Transaction, 0, len(txs)+1)
	updated = append(updated, tx)
	updated = append(updated, txs...)
	if err := saveJSON(ctx, s.store, ports.TransactionsKey(user.ID), updated); err != nil {
		return nil, err
	}
	s.cache = updated

	s.logger.Info().
		Str("user_id", user.ID).
		Int64("transaction_id", tx.ID).
		Str("type", string(tx.Type)).
		Str("category", tx.Category).
		Msg("transaction added")
	return &tx, nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	txs, err := s.transactions(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}
	return txs, nil
}

func (s *LedgerService) Overview(ctx context.Context) (*ports.Overview, error) {
	txs, err := s.transactions(ctx)
	if err != nil {
		return nil, err
	}
	sum := domain.Summarize(txs)
	return &ports.Overview{
		Summary:      sum,
		MonthlyLimit: domain.NewBudgetProgress(sum.TotalExpense, s.limits.MonthlyLimit),
	}, nil
}

func (s *LedgerService) Challenge(ctx context.Context) (*domain.Challenge, error) {
	txs, err := s.transactions(ctx)
	if err != nil {
		return nil, err
	}
	c := domain.NewChallenge(txs, s.limits.ChallengeCategory, s.limits.ChallengeLimit)
	return &c, nil
}

// Snapshot bundles everything the assistant reads. Hidden is left false.
func (s *LedgerService) Snapshot(ctx context.Context) (ports.Snapshot, error) {
	txs, err := s.transactions(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	return ports.Snapshot{
		Summary:      domain.Summarize(txs),
		Transactions: txs,
		Challenge:    domain.NewChallenge(txs, s.limits.ChallengeCategory, s.limits.ChallengeLimit),
	}, nil
}

// transactions returns a copy of the current user's list, newest first.
func (s *LedgerService) transactions(ctx context.Context) ([]domain.Transaction, error) {
	user, err := s.session.Current()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadLocked(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return append([]domain.Transaction(nil), txs...), nil
}

// loadLocked fills the cache for userID if it holds someone else's list.
// Callers hold s.mu.
func (s *LedgerService) loadLocked(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if s.owner == userID {
		return s.cache, nil
	}

	var txs []domain.Transaction
	if _, err := loadJSON(ctx, s.store, ports.TransactionsKey(userID), &txs); err != nil {
		return nil, err
	}
	for _, tx := range txs {
		s.ids.Observe(tx.ID)
	}
	s.owner, s.cache = userID, txs
	return txs, nil
}

func validateTransaction(in ports.AddTransactionInput) error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: type must be expense or income", domain.ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if _, ok := domain.LookupCategory(in.Type, in.Category); !ok {
		return fmt.Errorf("%w: unknown %s category %q", domain.ErrValidation, in.Type, in.Category)
	}
	return nil
}
