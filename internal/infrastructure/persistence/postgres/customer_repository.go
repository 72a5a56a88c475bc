package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finboard/finboard/internal/domain"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db.Pool}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Customer, error) {
		var m CustomerModel
		err := row.Scan(&m.ID, &m.Name, &m.Email, &m.ImageURL)
		return toDomainCustomer(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan customers: %w", err)
	}
	return results, nil
}
