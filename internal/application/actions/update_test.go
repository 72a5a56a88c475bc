package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard/internal/application"
	"github.com/finboard/finboard/internal/domain"
)

func seededInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:          "inv-1",
		CustomerID:  "c0",
		AmountCents: 500,
		Status:      domain.StatusPending,
		Date:        time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestUpdateInvoice_Success_DateUntouched(t *testing.T) {
	repo := NewMockInvoiceRepository()
	repo.Put(seededInvoice())
	views := &MockViewCache{}
	action := NewUpdateInvoiceAction(repo, views, discardLogger())

	outcome := action.Execute(context.Background(), "inv-1", map[string]string{
		"customerId": "c9",
		"amount":     "99.99",
		"status":     "paid",
	})

	require.Equal(t, OutcomeRedirect, outcome.Kind)
	assert.Equal(t, "/dashboard/invoices", outcome.Location)
	assert.Equal(t, []string{application.ViewInvoices}, views.InvalidatedKeys())

	stored := repo.Stored("inv-1")
	require.NotNil(t, stored)
	assert.Equal(t, "c9", stored.CustomerID)
	assert.Equal(t, int64(9999), stored.AmountCents)
	assert.Equal(t, domain.StatusPaid, stored.Status)
	assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), stored.Date)
}

func TestUpdateInvoice_ValidationFailure_ReusesCreateMessage(t *testing.T) {
	repo := NewMockInvoiceRepository()
	repo.UpdateFn = func(ctx context.Context, id, customerID string, amountCents int64, status domain.InvoiceStatus) (int64, error) {
		t.Fatal("update must not be called on invalid input")
		return 0, nil
	}
	views := &MockViewCache{}
	action := NewUpdateInvoiceAction(repo, views, discardLogger())

	outcome := action.Execute(context.Background(), "inv-1", map[string]string{
		"customerId": "",
		"amount":     "10",
		"status":     "paid",
	})

	require.Equal(t, OutcomeValidationFailed, outcome.Kind)
	assert.Equal(t, "Missing Fields. Failed to create invoice", outcome.Message)
	assert.Empty(t, views.InvalidatedKeys())
}

func TestUpdateInvoice_MissingTarget(t *testing.T) {
	repo := NewMockInvoiceRepository()
	views := &MockViewCache{}
	action := NewUpdateInvoiceAction(repo, views, discardLogger())

	outcome := action.Execute(context.Background(), "no-such-id", validFields())

	require.Equal(t, OutcomePersistenceFailed, outcome.Kind)
	assert.Equal(t, "Database Error: Failed to update invoice", outcome.Message)
	assert.Empty(t, views.InvalidatedKeys())
}

func TestUpdateInvoice_PersistenceFailure(t *testing.T) {
	repo := NewMockInvoiceRepository()
	repo.UpdateFn = func(ctx context.Context, id, customerID string, amountCents int64, status domain.InvoiceStatus) (int64, error) {
		return 0, errors.New("deadlock detected")
	}
	views := &MockViewCache{}
	action := NewUpdateInvoiceAction(repo, views, discardLogger())

	outcome := action.Execute(context.Background(), "inv-1", validFields())

	require.Equal(t, OutcomePersistenceFailed, outcome.Kind)
	assert.Equal(t, "Database Error: Failed to update invoice", outcome.Message)
	assert.Empty(t, views.InvalidatedKeys())
}
