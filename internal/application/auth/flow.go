// Package auth implements the credential verification flow and session token
// issuance for the dashboard login.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/finboard/finboard/internal/application"
	"github.com/finboard/finboard/internal/domain"
	"github.com/finboard/finboard/internal/observability"
)

// MinPasswordLength is the minimum accepted password length; shorter
// submissions are rejected before the store is ever consulted.
const MinPasswordLength = 6

// Outcome is the terminal result of one login attempt. There is no partial or
// pending state, and no state is retained between attempts.
type Outcome int

const (
	OutcomeAuthenticated Outcome = iota
	OutcomeInvalidCredentials
	OutcomeSystemError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeInvalidCredentials:
		return "invalid_credentials"
	default:
		return "system_error"
	}
}

// Identity is what a successful login exposes to the session layer. The
// stored password hash never travels past this package.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

type Flow struct {
	users    application.UserRepository
	hasher   PasswordHasher
	validate *validator.Validate
	logger   *slog.Logger
}

func NewFlow(users application.UserRepository, hasher PasswordHasher, logger *slog.Logger) *Flow {
	return &Flow{
		users:    users,
		hasher:   hasher,
		validate: validator.New(),
		logger:   logger,
	}
}

// Authenticate runs a single credential verification attempt.
//
// Unknown emails, store failures and wrong passwords all resolve to
// OutcomeInvalidCredentials so the response never discloses whether an email
// exists; store failures are still logged. Faults that are not part of the
// auth protocol (for example a stored hash bcrypt cannot read) resolve to
// OutcomeSystemError instead of being masked as bad credentials.
func (f *Flow) Authenticate(ctx context.Context, email, password string) (Outcome, *Identity) {
	outcome, identity := f.authenticate(ctx, email, password)
	observability.AuthAttemptsTotal.WithLabelValues(outcome.String()).Inc()
	return outcome, identity
}

func (f *Flow) authenticate(ctx context.Context, email, password string) (Outcome, *Identity) {
	if err := f.validate.Var(email, "required,email"); err != nil {
		return OutcomeInvalidCredentials, nil
	}
	if len(password) < MinPasswordLength {
		return OutcomeInvalidCredentials, nil
	}

	user, err := f.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			f.logger.Error("credential store lookup failed", "error", err)
		}
		return OutcomeInvalidCredentials, nil
	}

	if err := f.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return OutcomeInvalidCredentials, nil
		}
		f.logger.Error("password comparison failed", "user_id", user.ID, "error", err)
		return OutcomeSystemError, nil
	}

	return OutcomeAuthenticated, &Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
}
