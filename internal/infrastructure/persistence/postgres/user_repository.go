package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finboard/finboard/internal/domain"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.Pool}
}

// FindByEmail looks up a login by its unique email. A missing user returns
// domain.ErrUserNotFound; any other error means the store call itself failed.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM users WHERE email = $1
	`

	var m UserModel
	err := r.db.QueryRow(ctx, query, email).Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return toDomainUser(m), nil
}
