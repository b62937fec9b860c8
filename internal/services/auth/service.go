// Package auth manages the login session against /user/login and /user/me.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/zenmoney/zenmoney-cli/internal/clients/zenapi"
	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

// demoToken unlocks the client without a backend session.
const demoToken = "demo_token_zenmoney"

// Service implements AuthService. It is the only writer of the credential
// store; everything else reads the token through the provider capability.
type Service struct {
	client interfaces.APIClient
	creds  interfaces.CredentialStore
	logger *common.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewService creates an auth service.
func NewService(client interfaces.APIClient, creds interfaces.CredentialStore, logger *common.Logger) *Service {
	return &Service{
		client: client,
		creds:  creds,
		logger: logger,
	}
}

// Login exchanges credentials for a bearer token and stores it.
func (s *Service) Login(ctx context.Context, email, password string) error {
	resp, err := zenapi.Do[models.TokenResponse](ctx, s.client, http.MethodPost, "/user/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	if resp.AccessToken == "" {
		return errors.New("server did not return an access token")
	}

	if err := s.creds.SetToken(resp.AccessToken); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("Logged in")
	return nil
}

// DemoLogin stores a fixed demo token without a network call.
func (s *Service) DemoLogin() error {
	return s.creds.SetToken(demoToken)
}

// Logout clears the stored token.
func (s *Service) Logout() error {
	if err := s.creds.ClearToken(); err != nil {
		return err
	}
	s.logger.Info().Msg("Logged out")
	return nil
}

// CurrentUser fetches the authenticated user.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := zenapi.Do[models.User](ctx, s.client, http.MethodGet, "/user/me", nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Ensure Service implements AuthService
var _ interfaces.AuthService = (*Service)(nil)
