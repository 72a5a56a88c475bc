package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard/internal/application"
)

func TestDeleteInvoice_Success(t *testing.T) {
	repo := NewMockInvoiceRepository()
	repo.Put(seededInvoice())
	views := &MockViewCache{}
	action := NewDeleteInvoiceAction(repo, views, discardLogger())

	outcome := action.Execute(context.Background(), "inv-1")

	require.Equal(t, OutcomeConfirmed, outcome.Kind)
	assert.Equal(t, "Invoice deleted.", outcome.Message)
	assert.Equal(t, []string{application.ViewInvoices}, views.InvalidatedKeys())
	assert.Equal(t, 0, repo.Count())
}

func TestDeleteInvoice_NonExistent_StillSucceedsAndInvalidates(t *testing.T) {
	repo := NewMockInvoiceRepository()
	views := &MockViewCache{}
	action := NewDeleteInvoiceAction(repo, views, discardLogger())

	outcome := action.Execute(context.Background(), "ghost")

	require.Equal(t, OutcomeConfirmed, outcome.Kind)
	assert.Equal(t, "Invoice deleted.", outcome.Message)
	assert.Equal(t, []string{application.ViewInvoices}, views.InvalidatedKeys())
}

func TestDeleteInvoice_PersistenceFailure(t *testing.T) {
	repo := NewMockInvoiceRepository()
	repo.DeleteFn = func(ctx context.Context, id string) (int64, error) {
		return 0, errors.New("connection reset")
	}
	views := &MockViewCache{}
	action := NewDeleteInvoiceAction(repo, views, discardLogger())

	outcome := action.Execute(context.Background(), "inv-1")

	require.Equal(t, OutcomePersistenceFailed, outcome.Kind)
	assert.Equal(t, "Database Error: Failed to delete invoice", outcome.Message)
	assert.Empty(t, views.InvalidatedKeys())
}
