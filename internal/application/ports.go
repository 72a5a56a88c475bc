// Package application holds the ports and error taxonomy shared by the
// mutation actions, the authentication flow and the query services.
package application

import (
	"context"

	"github.com/finboard/finboard/internal/domain"
)

// View keys used for cache invalidation. Every invoice-derived view is cached
// under the ViewInvoices prefix, so a single invalidation after a mutation
// refreshes the invoice list, the latest-invoices card and the revenue chart.
const (
	ViewDashboard = "/dashboard"
	ViewInvoices  = "/dashboard/invoices"
	ViewCustomers = "/dashboard/customers"
)

// InvoiceRepository defines the persistence interface for invoices.
// Update and Delete return the number of rows affected; a zero-row delete is
// not an error.
type InvoiceRepository interface {
	Insert(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, id, customerID string, amountCents int64, status domain.InvoiceStatus) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	FindFiltered(ctx context.Context, query string, limit, offset int) ([]*domain.InvoiceSummary, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	FindLatest(ctx context.Context, limit int) ([]*domain.InvoiceSummary, error)
	CardData(ctx context.Context) (*domain.CardData, error)
	RevenueByMonth(ctx context.Context, months int) ([]*domain.MonthlyRevenue, error)
}

// UserRepository is the credential store lookup. FindByEmail returns
// domain.ErrUserNotFound when no user has the given email; any other error
// means the store itself failed. Callers must not conflate the two.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*domain.Customer, error)
}

// ViewCache marks rendered views stale after writes. Invalidate drops every
// cached entry under the given view key prefix; it is idempotent, best-effort
// and never fails a completed write.
type ViewCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(viewKey string)
}
