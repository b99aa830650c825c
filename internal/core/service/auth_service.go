package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

const resetTokenTTL = 30 * time.Minute

// AuthService implements login, account provisioning and credential reset.
type AuthService struct {
	repo      ports.AccountRepository
	tokens    ports.ResetTokenStore
	logger    zerolog.Logger
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AccountRepository, tokens ports.ResetTokenStore, logger zerolog.Logger, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, tokens: tokens, logger: logger, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Provision creates a login credential. This is step one of member
// enrolment; it is deliberately not transactional with the profile insert.
func (s *AuthService) Provision(ctx context.Context, email, password string, role domain.Role) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.PermissionsFor(role); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("account_id", created.ID).Str("role", string(role)).Msg("account provisioned")
	return created, nil
}

// Login verifies the password and issues a signed bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// RequestReset issues a one-shot reset token for the given account. The
// capability check runs first: a caller without CanResetCredential is
// rejected before any store or network access happens.
func (s *AuthService) RequestReset(ctx context.Context, caller ports.Caller, email string) (string, error) {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return "", err
	}
	if !caps.CanResetCredential {
		return "", domain.ErrPermissionDenied
	}

	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(ctx, email, resetTokenTTL)
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("email", email).Msg("credential reset token issued")
	return token, nil
}

// ConfirmReset consumes a reset token and replaces the account password.
func (s *AuthService) ConfirmReset(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	email, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return err
	}
	s.logger.Info().Str("email", email).Msg("credential reset completed")
	return nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  string(account.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
