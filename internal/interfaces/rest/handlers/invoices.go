package handlers

import (
	"net/http"
	"strconv"

	"github.com/finboard/finboard/internal/application/actions"
	"github.com/finboard/finboard/internal/domain"
	"github.com/finboard/finboard/internal/interfaces/rest"
)

// MutationResponse is the caller-facing result shape of a mutation:
// field errors and a message on failure, a redirect target on success.
type MutationResponse struct {
	Errors     actions.FieldErrors `json:"errors,omitempty"`
	Message    string              `json:"message,omitempty"`
	RedirectTo string              `json:"redirectTo,omitempty"`
}

type invoiceResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}

type invoiceSummaryResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	ImageURL      string `json:"image_url"`
	AmountCents   int64  `json:"amount_cents"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

const dateLayout = "2006-01-02"

func (h *Handlers) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	fields, ok := formFields(w, r, h)
	if !ok {
		return
	}
	h.writeOutcome(w, h.create.Execute(r.Context(), fields))
}

func (h *Handlers) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	fields, ok := formFields(w, r, h)
	if !ok {
		return
	}
	h.writeOutcome(w, h.update.Execute(r.Context(), r.PathValue("id"), fields))
}

func (h *Handlers) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, h.delete.Execute(r.Context(), r.PathValue("id")))
}

func (h *Handlers) ListInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	invoices, err := h.queries.FilteredInvoices(r.Context(), query, page)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	pages, err := h.queries.InvoicePages(r.Context(), query)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, map[string]any{
		"invoices":   toSummaryResponses(invoices),
		"totalPages": pages,
	})
}

func (h *Handlers) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.queries.InvoiceByID(r.Context(), r.PathValue("id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, invoiceResponse{
		ID:          invoice.ID,
		CustomerID:  invoice.CustomerID,
		AmountCents: invoice.AmountCents,
		Status:      string(invoice.Status),
		Date:        invoice.Date.Format(dateLayout),
	})
}

// formFields flattens the submitted form into the raw field map the
// validation schema consumes.
func formFields(w http.ResponseWriter, r *http.Request, h *Handlers) (map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		rest.WriteJSON(w, http.StatusBadRequest, MutationResponse{Message: "malformed form body"})
		return nil, false
	}

	fields := make(map[string]string, len(r.PostForm))
	for name := range r.PostForm {
		fields[name] = r.PostForm.Get(name)
	}
	return fields, true
}

// writeOutcome maps the discriminated mutation outcome onto HTTP. Every
// variant is handled; an unknown kind is a programming error.
func (h *Handlers) writeOutcome(w http.ResponseWriter, outcome actions.Outcome) {
	switch outcome.Kind {
	case actions.OutcomeRedirect:
		w.Header().Set("Location", outcome.Location)
		rest.WriteJSON(w, http.StatusSeeOther, MutationResponse{RedirectTo: outcome.Location})

	case actions.OutcomeValidationFailed:
		rest.WriteJSON(w, http.StatusUnprocessableEntity, MutationResponse{
			Errors:  outcome.Errors,
			Message: outcome.Message,
		})

	case actions.OutcomePersistenceFailed:
		rest.WriteJSON(w, http.StatusInternalServerError, MutationResponse{
			Message: outcome.Message,
		})

	case actions.OutcomeConfirmed:
		rest.WriteJSON(w, http.StatusOK, MutationResponse{Message: outcome.Message})

	default:
		h.logger.Error("unhandled mutation outcome", "kind", outcome.Kind)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func toSummaryResponses(invoices []*domain.InvoiceSummary) []invoiceSummaryResponse {
	out := make([]invoiceSummaryResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, invoiceSummaryResponse{
			ID:            inv.ID,
			CustomerID:    inv.CustomerID,
			CustomerName:  inv.CustomerName,
			CustomerEmail: inv.CustomerEmail,
			ImageURL:      inv.ImageURL,
			AmountCents:   inv.AmountCents,
			Amount:        domain.FormatUSD(inv.AmountCents),
			Status:        string(inv.Status),
			Date:          inv.Date.Format(dateLayout),
		})
	}
	return out
}
