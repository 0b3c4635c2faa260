package service

import (
	"context"
	"fmt"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/models"
)

// AuthService drives the daemon's browser sign-in flow. Sign-out goes
// through the dispatcher as [models.ActionLogout].
type AuthService struct {
	auth   adapter.AuthProxy
	logger *logger.Logger
}

func NewAuthService(auth adapter.AuthProxy, logger *logger.Logger) *AuthService {
	return &AuthService{auth: auth, logger: logger}
}

// Begin starts a sign-in and returns the URL to open in a browser.
func (s *AuthService) Begin(ctx context.Context) (models.AuthSession, error) {
	session, err := s.auth.StartAuth(ctx)
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("start auth: %w", err)
	}
	s.logger.Info().Msg("sign-in started")
	return session, nil
}

// Complete hands the authorization code back to the daemon. A rejected code
// is reported as ErrNotAuthenticated.
func (s *AuthService) Complete(ctx context.Context, code, state string) error {
	ok, err := s.auth.CompleteAuth(ctx, code, state)
	if err != nil {
		return fmt.Errorf("complete auth: %w", err)
	}
	if !ok {
		return ErrNotAuthenticated
	}
	s.logger.Info().Msg("sign-in completed")
	return nil
}

func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	ok, err := s.auth.IsAuthenticated(ctx)
	if err != nil {
		return false, fmt.Errorf("is authenticated: %w", err)
	}
	return ok, nil
}
