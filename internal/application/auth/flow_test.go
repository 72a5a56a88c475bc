package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/finboard/finboard/internal/domain"
)

type mockUserRepository struct {
	user    *domain.User
	err     error
	lookups int
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.lookups++
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.Email != email {
		return nil, domain.ErrUserNotFound
	}
	return m.user, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           "u1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
	}
}

func TestAuthenticate_Success(t *testing.T) {
	users := &mockUserRepository{user: testUser(t, "correct-horse")}
	flow := NewFlow(users, &BcryptHasher{}, discardLogger())

	outcome, identity := flow.Authenticate(context.Background(), "ada@example.com", "correct-horse")

	require.Equal(t, OutcomeAuthenticated, outcome)
	require.NotNil(t, identity)
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, "Ada", identity.Name)
	assert.Equal(t, "ada@example.com", identity.Email)
}

func TestAuthenticate_ShortPassword_SkipsLookup(t *testing.T) {
	users := &mockUserRepository{user: testUser(t, "12345")}
	flow := NewFlow(users, &BcryptHasher{}, discardLogger())

	outcome, identity := flow.Authenticate(context.Background(), "ada@example.com", "12345")

	assert.Equal(t, OutcomeInvalidCredentials, outcome)
	assert.Nil(t, identity)
	assert.Equal(t, 0, users.lookups)
}

func TestAuthenticate_MalformedEmail_SkipsLookup(t *testing.T) {
	users := &mockUserRepository{}
	flow := NewFlow(users, &BcryptHasher{}, discardLogger())

	for _, email := range []string{"", "not-an-email", "missing@tld@twice"} {
		outcome, identity := flow.Authenticate(context.Background(), email, "long-enough")

		assert.Equal(t, OutcomeInvalidCredentials, outcome, "email %q", email)
		assert.Nil(t, identity)
	}
	assert.Equal(t, 0, users.lookups)
}

func TestAuthenticate_WrongPasswordAndUnknownEmail_Indistinguishable(t *testing.T) {
	users := &mockUserRepository{user: testUser(t, "correct-horse")}
	flow := NewFlow(users, &BcryptHasher{}, discardLogger())

	wrongPw, wrongPwID := flow.Authenticate(context.Background(), "ada@example.com", "battery-staple")
	unknown, unknownID := flow.Authenticate(context.Background(), "nobody@example.com", "battery-staple")

	assert.Equal(t, OutcomeInvalidCredentials, wrongPw)
	assert.Equal(t, OutcomeInvalidCredentials, unknown)
	assert.Nil(t, wrongPwID)
	assert.Nil(t, unknownID)
}

func TestAuthenticate_StoreFailure_ReportsInvalidCredentials(t *testing.T) {
	users := &mockUserRepository{err: errors.New("connection refused")}
	flow := NewFlow(users, &BcryptHasher{}, discardLogger())

	outcome, identity := flow.Authenticate(context.Background(), "ada@example.com", "correct-horse")

	assert.Equal(t, OutcomeInvalidCredentials, outcome)
	assert.Nil(t, identity)
}

func TestAuthenticate_UnusableHash_SystemError(t *testing.T) {
	users := &mockUserRepository{user: &domain.User{
		ID:           "u1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "not-a-bcrypt-hash",
	}}
	flow := NewFlow(users, &BcryptHasher{}, discardLogger())

	outcome, identity := flow.Authenticate(context.Background(), "ada@example.com", "correct-horse")

	assert.Equal(t, OutcomeSystemError, outcome)
	assert.Nil(t, identity)
}
