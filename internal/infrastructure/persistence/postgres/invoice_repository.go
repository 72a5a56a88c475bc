package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finboard/finboard/internal/domain"
)

type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *DB) *InvoiceRepository {
	return &InvoiceRepository{db: db.Pool}
}

func (r *InvoiceRepository) Insert(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		invoice.ID,
		invoice.CustomerID,
		invoice.AmountCents,
		string(invoice.Status),
		invoice.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

// Update replaces the customer reference, amount and status of one invoice.
// The date column is deliberately absent from the statement; the creation
// date is immutable. Returns the number of rows affected.
func (r *InvoiceRepository) Update(ctx context.Context, id, customerID string, amountCents int64, status domain.InvoiceStatus) (int64, error) {
	query := `
		UPDATE invoices
		SET customer_id = $1,
		    amount = $2,
		    status = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, customerID, amountCents, string(status), id)
	if err != nil {
		return 0, fmt.Errorf("failed to update invoice: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete invoice: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1
	`

	var m InvoiceModel
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.CustomerID, &m.Amount, &m.Status, &m.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to scan invoice: %w", err)
	}
	return toDomainInvoice(m), nil
}

// FindFiltered returns one page of invoices joined with their customers,
// matching the free-text search across name, email, amount, status and date.
func (r *InvoiceRepository) FindFiltered(ctx context.Context, search string, limit, offset int) ([]*domain.InvoiceSummary, error) {
	query := `
		SELECT i.id, i.customer_id, c.name, c.email, c.image_url, i.amount, i.status, i.date
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.name ILIKE $1
		   OR c.email ILIKE $1
		   OR i.amount::text ILIKE $1
		   OR i.status ILIKE $1
		   OR i.date::text ILIKE $1
		ORDER BY i.date DESC, i.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, "%"+search+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query filtered invoices: %w", err)
	}
	return collectSummaries(rows)
}

func (r *InvoiceRepository) CountFiltered(ctx context.Context, search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.name ILIKE $1
		   OR c.email ILIKE $1
		   OR i.amount::text ILIKE $1
		   OR i.status ILIKE $1
		   OR i.date::text ILIKE $1
	`

	var count int
	if err := r.db.QueryRow(ctx, query, "%"+search+"%").Scan(&count); err != nil {
		return 0, fmt.Errorf("count filtered invoices: %w", err)
	}
	return count, nil
}

func (r *InvoiceRepository) FindLatest(ctx context.Context, limit int) ([]*domain.InvoiceSummary, error) {
	query := `
		SELECT i.id, i.customer_id, c.name, c.email, c.image_url, i.amount, i.status, i.date
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC, i.id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query latest invoices: %w", err)
	}
	return collectSummaries(rows)
}

// CardData gathers the overview card totals in a single round trip.
func (r *InvoiceRepository) CardData(ctx context.Context) (*domain.CardData, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM invoices),
			(SELECT COUNT(*) FROM customers),
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)
		FROM invoices
	`

	var data domain.CardData
	err := r.db.QueryRow(ctx, query).Scan(
		&data.InvoiceCount,
		&data.CustomerCount,
		&data.PaidCents,
		&data.PendingCents,
	)
	if err != nil {
		return nil, fmt.Errorf("query card data: %w", err)
	}
	return &data, nil
}

// RevenueByMonth sums paid invoices per calendar month over the trailing
// window, oldest bucket first.
func (r *InvoiceRepository) RevenueByMonth(ctx context.Context, months int) ([]*domain.MonthlyRevenue, error) {
	query := `
		SELECT to_char(date_trunc('month', date), 'Mon') AS month,
		       SUM(amount) AS revenue
		FROM invoices
		WHERE status = 'paid'
		  AND date >= date_trunc('month', now()) - ($1 || ' months')::interval
		GROUP BY date_trunc('month', date)
		ORDER BY date_trunc('month', date)
	`

	rows, err := r.db.Query(ctx, query, months-1)
	if err != nil {
		return nil, fmt.Errorf("query monthly revenue: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.MonthlyRevenue, error) {
		var m domain.MonthlyRevenue
		err := row.Scan(&m.Month, &m.RevenueCents)
		return &m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan monthly revenue: %w", err)
	}
	return results, nil
}

func collectSummaries(rows pgx.Rows) ([]*domain.InvoiceSummary, error) {
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.InvoiceSummary, error) {
		var m InvoiceSummaryModel
		err := row.Scan(
			&m.ID, &m.CustomerID, &m.CustomerName, &m.CustomerEmail,
			&m.ImageURL, &m.Amount, &m.Status, &m.Date,
		)
		return toDomainSummary(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan invoice summaries: %w", err)
	}
	return results, nil
}
