package actions

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finboard/finboard/internal/application"
	"github.com/finboard/finboard/internal/domain"
	"github.com/finboard/finboard/internal/observability"
)

type CreateInvoiceAction struct {
	invoices application.InvoiceRepository
	views    application.ViewCache
	logger   *slog.Logger
	now      func() time.Time
}

func NewCreateInvoiceAction(
	invoices application.InvoiceRepository,
	views application.ViewCache,
	logger *slog.Logger,
) *CreateInvoiceAction {
	return &CreateInvoiceAction{
		invoices: invoices,
		views:    views,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute validates the raw form fields and performs a single insert. The
// creation date is the current UTC calendar date; the identifier is
// system-generated. No persistence call happens on invalid input.
func (a *CreateInvoiceAction) Execute(ctx context.Context, fields map[string]string) Outcome {
	form, fieldErrs := ParseInvoiceForm(fields)
	if fieldErrs != nil {
		observability.MutationsTotal.WithLabelValues("create", "validation_failed").Inc()
		return validationFailed(fieldErrs, msgMissingFields)
	}

	y, m, d := a.now().UTC().Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	invoice, err := domain.NewInvoice(uuid.New().String(), form.CustomerID, form.AmountCents, form.Status, date)
	if err != nil {
		a.logger.Error("failed to build invoice record", "error", err)
		observability.MutationsTotal.WithLabelValues("create", "persistence_failed").Inc()
		return persistenceFailed(msgCreateFailed)
	}

	if err := a.invoices.Insert(ctx, invoice); err != nil {
		a.logger.Error("failed to insert invoice",
			"invoice_id", invoice.ID,
			"customer_id", invoice.CustomerID,
			"error", err,
		)
		observability.MutationsTotal.WithLabelValues("create", "persistence_failed").Inc()
		return persistenceFailed(msgCreateFailed)
	}

	a.views.Invalidate(application.ViewInvoices)
	observability.MutationsTotal.WithLabelValues("create", "redirect").Inc()
	return redirectTo(application.ViewInvoices)
}
