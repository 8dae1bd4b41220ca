package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// AuthService implements registration, login and the single process-wide
// session. The session is mirrored to the store so a restart resumes it.
type AuthService struct {
	store     ports.Store
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	newID     func() string

	// usersMu serialises read-check-write of the user list.
	usersMu sync.Mutex

	mu        sync.RWMutex
	current   *domain.User
	observers []ports.SessionObserver
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(store ports.Store, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// Subscribe registers o for session changes.
func (s *AuthService) Subscribe(o ports.SessionObserver) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Restore loads the persisted session. A session record that cannot be
// decoded is discarded and the service starts logged out.
func (s *AuthService) Restore(ctx context.Context) error {
	var user domain.User
	found, err := loadJSON(ctx, s.store, ports.SessionKey, &user)
	if errors.Is(err, domain.ErrCorruptRecord) {
		s.logger.Warn().Err(err).Msg("discarding unreadable session")
		if err := s.store.Remove(ctx, ports.SessionKey); err != nil {
			return fmt.Errorf("reset session: %w", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if !found || user.ID == "" {
		return nil
	}

	s.setCurrent(ctx, &user)
	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("session restored")
	return nil
}

func (s *AuthService) Register(ctx context.Context, fullName, username, password string) (string, *domain.User, error) {
	if fullName == "" || username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: full name, username and password are required", domain.ErrValidation)
	}

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.users(ctx)
	if err != nil {
		return "", nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return "", nil, domain.ErrDuplicateUser
		}
	}

	user := domain.User{
		ID:       s.newID(),
		FullName: fullName,
		Username: username,
		Password: password,
	}
	if err := saveJSON(ctx, s.store, ports.UsersKey, append(users, user)); err != nil {
		return "", nil, err
	}

	return s.startSession(ctx, &user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	users, err := s.users(ctx)
	if err != nil {
		return "", nil, err
	}
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			return s.startSession(ctx, &users[i])
		}
	}
	return "", nil, domain.ErrInvalidCredentials
}

// Logout ends the session. Per-user data stays in the store.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, ports.SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.setCurrent(ctx, nil)
	return nil
}

func (s *AuthService) Current() (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, domain.ErrNotLoggedIn
	}
	u := *s.current
	return &u, nil
}

func (s *AuthService) users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if _, err := loadJSON(ctx, s.store, ports.UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User) (string, *domain.User, error) {
	if err := saveJSON(ctx, s.store, ports.SessionKey, user); err != nil {
		return "", nil, err
	}
	s.setCurrent(ctx, user)

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	u := *user
	return token, &u, nil
}

func (s *AuthService) setCurrent(ctx context.Context, user *domain.User) {
	s.mu.Lock()
	if user != nil {
		u := *user
		s.current = &u
	} else {
		s.current = nil
	}
	observers := append([]ports.SessionObserver(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		o.SessionChanged(ctx, user)
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
