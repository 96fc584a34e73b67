// Package auth manages the client session: sign up, login, logout and the
// bearer token handed to the store client.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/client/api"
	"github.com/iudanet/marketsync/internal/client/storage"
	"github.com/iudanet/marketsync/internal/validation"
	pkgapi "github.com/iudanet/marketsync/pkg/api"
)

// ErrNotLoggedIn is returned by operations that need a session
var ErrNotLoggedIn = errors.New("not logged in")

// Compile-time check that Service can feed the store client
var _ api.TokenSource = (*Service)(nil)

// Service предоставляет функции авторизации
type Service struct {
	remote  Remote
	store   SessionStore
	clock   clockwork.Clock
	logger  *slog.Logger
	session *storage.Session // расшифрованная сессия, загружается лениво
	mu      sync.Mutex
	loaded  bool
}

// NewService создает новый сервис авторизации
func NewService(remote Remote, store SessionStore, clock clockwork.Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		remote: remote,
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// SignUp регистрирует нового пользователя и возвращает его ID
func (s *Service) SignUp(ctx context.Context, email, password string) (string, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return "", fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.remote.SignUp(ctx, pkgapi.SignUpRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("User registered", "user_id", resp.UserID)
	return resp.UserID, nil
}

// Login выполняет аутентификацию и сохраняет зашифрованную сессию
func (s *Service) Login(ctx context.Context, email, password string) (*storage.Session, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: password cannot be empty")
	}

	resp, err := s.remote.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := s.sessionFrom(email, resp)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", "user_id", session.UserID, "role", session.Role)
	return session, nil
}

// Refresh exchanges the stored refresh token for a new pair. It is only
// called explicitly; an expired access token is never refreshed behind the
// caller's back.
func (s *Service) Refresh(ctx context.Context) (*storage.Session, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current.RefreshToken == "" {
		return nil, &api.AuthError{Op: "refresh", Message: "no refresh token, please log in again", Status: 401}
	}

	resp, err := s.remote.Refresh(ctx, current.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh failed: %w", err)
	}

	session := s.sessionFrom(current.Email, resp)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Session refreshed", "user_id", session.UserID)
	return session, nil
}

// Logout удаляет локальную сессию. Выход без сессии не ошибка.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	s.session = nil
	s.loaded = true

	s.logger.Info("User logged out")
	return nil
}

// Current returns the decrypted session or ErrNotLoggedIn.
func (s *Service) Current(ctx context.Context) (*storage.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		session, err := s.store.Load(ctx)
		switch {
		case errors.Is(err, storage.ErrSessionNotFound):
			session = nil
		case err != nil:
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		s.session = session
		s.loaded = true
	}

	if s.session == nil {
		return nil, ErrNotLoggedIn
	}
	copied := *s.session
	return &copied, nil
}

// Token implements api.TokenSource. Without a session it returns an empty
// token and the call goes out anonymously; an expired access token yields
// *api.AuthError.
func (s *Service) Token(ctx context.Context) (string, error) {
	session, err := s.Current(ctx)
	if errors.Is(err, ErrNotLoggedIn) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if exp := expiresAt(session); !exp.IsZero() && !s.clock.Now().Before(exp) {
		return "", &api.AuthError{Op: "session", Message: "session expired, please log in again", Status: 401}
	}
	return session.AccessToken, nil
}

// IsAdmin reports whether the current session has the admin role.
func (s *Service) IsAdmin(ctx context.Context) bool {
	session, err := s.Current(ctx)
	return err == nil && session.IsAdmin()
}

func (s *Service) sessionFrom(email string, resp *pkgapi.TokenResponse) *storage.Session {
	session := &storage.Session{
		Email:        email,
		UserID:       resp.UserID,
		Role:         resp.Role,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if resp.ExpiresIn > 0 {
		session.ExpiresAt = s.clock.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}
	return session
}

func (s *Service) save(ctx context.Context, session *storage.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	copied := *session
	s.session = &copied
	s.loaded = true
	return nil
}

// expiresAt берет exp из JWT без проверки подписи (подпись проверяет сервер),
// иначе срок из ответа логина
func expiresAt(session *storage.Session) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(session.AccessToken, claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	if session.ExpiresAt > 0 {
		return time.Unix(session.ExpiresAt, 0)
	}
	return time.Time{}
}
