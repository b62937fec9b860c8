package interfaces

import (
	"context"

	"github.com/zenmoney/zenmoney-cli/internal/models"
)

// AuthService manages the login session.
type AuthService interface {
	// Login exchanges credentials for a bearer token and stores it.
	Login(ctx context.Context, email, password string) error

	// DemoLogin stores a fixed demo token without a network call.
	DemoLogin() error

	// Logout clears the stored token.
	Logout() error

	// CurrentUser fetches the authenticated user from /user/me.
	CurrentUser(ctx context.Context) (*models.User, error)
}
