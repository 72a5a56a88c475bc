package actions

import (
	"context"
	"log/slog"

	"github.com/finboard/finboard/internal/application"
	"github.com/finboard/finboard/internal/observability"
)

type UpdateInvoiceAction struct {
	invoices application.InvoiceRepository
	views    application.ViewCache
	logger   *slog.Logger
}

func NewUpdateInvoiceAction(
	invoices application.InvoiceRepository,
	views application.ViewCache,
	logger *slog.Logger,
) *UpdateInvoiceAction {
	return &UpdateInvoiceAction{
		invoices: invoices,
		views:    views,
		logger:   logger,
	}
}

// Execute replaces the customer reference, amount and status of the invoice
// identified by id. The identifier is trusted route input and is not part of
// the validated form; the creation date is never modified. An update that
// matches no row surfaces as a persistence failure rather than silently
// affecting zero rows.
func (a *UpdateInvoiceAction) Execute(ctx context.Context, id string, fields map[string]string) Outcome {
	form, fieldErrs := ParseInvoiceForm(fields)
	if fieldErrs != nil {
		observability.MutationsTotal.WithLabelValues("update", "validation_failed").Inc()
		return validationFailed(fieldErrs, msgMissingFields)
	}

	rows, err := a.invoices.Update(ctx, id, form.CustomerID, form.AmountCents, form.Status)
	if err != nil {
		a.logger.Error("failed to update invoice", "invoice_id", id, "error", err)
		observability.MutationsTotal.WithLabelValues("update", "persistence_failed").Inc()
		return persistenceFailed(msgUpdateFailed)
	}
	if rows == 0 {
		a.logger.Warn("update matched no invoice", "invoice_id", id)
		observability.MutationsTotal.WithLabelValues("update", "persistence_failed").Inc()
		return persistenceFailed(msgUpdateFailed)
	}

	a.views.Invalidate(application.ViewInvoices)
	observability.MutationsTotal.WithLabelValues("update", "redirect").Inc()
	return redirectTo(application.ViewInvoices)
}
