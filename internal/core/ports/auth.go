package ports

import (
	"context"
	"time"

	"github.com/cezeus/club-api/internal/core/domain"
)

// AccountRepository defines persistence for login credentials.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// ResetTokenStore issues and consumes one-shot credential-reset tokens.
// Tokens expire on their own; consuming a token invalidates it.
type ResetTokenStore interface {
	Issue(ctx context.Context, email string, ttl time.Duration) (string, error)
	Consume(ctx context.Context, token string) (string, error)
}

// AccountProvisioner is the slice of AuthService the roster uses for step
// one of member creation.
type AccountProvisioner interface {
	Provision(ctx context.Context, email, password string, role domain.Role) (*domain.Account, error)
}

// AuthService covers login, account provisioning and the credential reset
// flow. Provision is step one of member creation and is also used standalone
// for staff accounts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Provision(ctx context.Context, email, password string, role domain.Role) (*domain.Account, error)
	// RequestReset issues a reset token for the member's login credential.
	// Only callers whose capabilities include credential reset may invoke it;
	// the check happens before any network or store access.
	RequestReset(ctx context.Context, caller Caller, email string) (string, error)
	ConfirmReset(ctx context.Context, token, newPassword string) error
}
