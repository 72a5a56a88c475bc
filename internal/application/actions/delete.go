package actions

import (
	"context"
	"log/slog"

	"github.com/finboard/finboard/internal/application"
	"github.com/finboard/finboard/internal/observability"
)

type DeleteInvoiceAction struct {
	invoices application.InvoiceRepository
	views    application.ViewCache
	logger   *slog.Logger
}

func NewDeleteInvoiceAction(
	invoices application.InvoiceRepository,
	views application.ViewCache,
	logger *slog.Logger,
) *DeleteInvoiceAction {
	return &DeleteInvoiceAction{
		invoices: invoices,
		views:    views,
		logger:   logger,
	}
}

// Execute removes the invoice identified by id. There is no form stage.
// Deleting an identifier that matches no row still succeeds; the invoice list
// is invalidated either way so the caller re-renders from current state.
// Delete confirms in place rather than redirecting, since it is invoked from
// within the list view.
func (a *DeleteInvoiceAction) Execute(ctx context.Context, id string) Outcome {
	rows, err := a.invoices.Delete(ctx, id)
	if err != nil {
		a.logger.Error("failed to delete invoice", "invoice_id", id, "error", err)
		observability.MutationsTotal.WithLabelValues("delete", "persistence_failed").Inc()
		return persistenceFailed(msgDeleteFailed)
	}
	if rows == 0 {
		a.logger.Debug("delete matched no invoice", "invoice_id", id)
	}

	a.views.Invalidate(application.ViewInvoices)
	observability.MutationsTotal.WithLabelValues("delete", "confirmed").Inc()
	return confirmed(msgDeleted)
}
