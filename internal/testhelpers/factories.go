package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard/internal/domain"
)

// InsertCustomer seeds a customer row and returns its generated id.
func (td *TestDatabase) InsertCustomer(t *testing.T, name, email string) string {
	t.Helper()
	id := uuid.New().String()

	_, err := td.DB.Pool.Exec(context.Background(),
		`INSERT INTO customers (id, name, email, image_url) VALUES ($1, $2, $3, '')`,
		id, name, email,
	)
	require.NoError(t, err)
	return id
}

// InsertUser seeds a login row with a pre-computed password hash.
func (td *TestDatabase) InsertUser(t *testing.T, name, email, passwordHash string) string {
	t.Helper()
	id := uuid.New().String()

	_, err := td.DB.Pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`,
		id, name, email, passwordHash,
	)
	require.NoError(t, err)
	return id
}

// InsertInvoice seeds an invoice row referencing customerID and returns it.
func (td *TestDatabase) InsertInvoice(t *testing.T, customerID string, amountCents int64, status domain.InvoiceStatus, date time.Time) *domain.Invoice {
	t.Helper()
	invoice := &domain.Invoice{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
		Date:        date,
	}

	_, err := td.DB.Pool.Exec(context.Background(),
		`INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5)`,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, string(invoice.Status), invoice.Date,
	)
	require.NoError(t, err)
	return invoice
}
