// Package handlers exposes the dashboard over JSON HTTP endpoints.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/finboard/finboard/internal/application/actions"
	"github.com/finboard/finboard/internal/application/auth"
	"github.com/finboard/finboard/internal/application/queries"
)

// SessionCookie carries the signed session token between requests.
const SessionCookie = "dashboard_session"

// Action interfaces let handler tests substitute the mutation pipeline.
type CreateAction interface {
	Execute(ctx context.Context, fields map[string]string) actions.Outcome
}

type UpdateAction interface {
	Execute(ctx context.Context, id string, fields map[string]string) actions.Outcome
}

type DeleteAction interface {
	Execute(ctx context.Context, id string) actions.Outcome
}

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (auth.Outcome, *auth.Identity)
}

type Handlers struct {
	create  CreateAction
	update  UpdateAction
	delete  DeleteAction
	flow    Authenticator
	tokens  *auth.TokenIssuer
	queries *queries.Service
	logger  *slog.Logger
}

func NewHandlers(
	create CreateAction,
	update UpdateAction,
	delete DeleteAction,
	flow Authenticator,
	tokens *auth.TokenIssuer,
	queryService *queries.Service,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		create:  create,
		update:  update,
		delete:  delete,
		flow:    flow,
		tokens:  tokens,
		queries: queryService,
		logger:  logger,
	}
}

// Routes registers every endpoint on mux. guard wraps the routes that require
// an authenticated session; login, health and metrics stay open.
func (h *Handlers) Routes(mux *http.ServeMux, guard func(http.Handler) http.Handler) {
	protected := func(fn http.HandlerFunc) http.Handler {
		return guard(fn)
	}

	mux.Handle("POST /api/invoices", protected(h.CreateInvoice))
	mux.Handle("PUT /api/invoices/{id}", protected(h.UpdateInvoice))
	mux.Handle("DELETE /api/invoices/{id}", protected(h.DeleteInvoice))
	mux.Handle("GET /api/invoices", protected(h.ListInvoices))
	mux.Handle("GET /api/invoices/{id}", protected(h.GetInvoice))

	mux.Handle("GET /api/dashboard/cards", protected(h.DashboardCards))
	mux.Handle("GET /api/dashboard/revenue", protected(h.DashboardRevenue))
	mux.Handle("GET /api/dashboard/latest-invoices", protected(h.LatestInvoices))
	mux.Handle("GET /api/customers", protected(h.ListCustomers))

	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
