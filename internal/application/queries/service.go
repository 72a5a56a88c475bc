// Package queries serves the read side of the dashboard: invoice lists,
// overview cards, the revenue chart and the customer picker. Results derived
// from invoices are cached under the /dashboard/invoices view key, so the
// single invalidation a mutation emits refreshes all of them.
package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finboard/finboard/internal/application"
	"github.com/finboard/finboard/internal/domain"
)

// InvoicesPerPage is the fixed page size of the invoices table.
const InvoicesPerPage = 6

const latestInvoicesLimit = 5

type Service struct {
	invoices  application.InvoiceRepository
	customers application.CustomerRepository
	views     application.ViewCache
	logger    *slog.Logger
}

func NewService(
	invoices application.InvoiceRepository,
	customers application.CustomerRepository,
	views application.ViewCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		invoices:  invoices,
		customers: customers,
		views:     views,
		logger:    logger,
	}
}

// cached reads a view through the cache: a hit returns the stored value, a
// miss fetches, stores and returns. Stale entries disappear either through
// mutation-driven invalidation or the cache's own TTL.
func cached[T any](s *Service, key string, fetch func() (T, error)) (T, error) {
	if v, ok := s.views.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	s.views.Set(key, v)
	return v, nil
}

// FilteredInvoices returns one page of the invoices table matching the search
// query. Pages are 1-based; out-of-range pages return an empty slice.
func (s *Service) FilteredInvoices(ctx context.Context, query string, page int) ([]*domain.InvoiceSummary, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage

	key := fmt.Sprintf("%s?query=%s&page=%d", application.ViewInvoices, query, page)
	return cached(s, key, func() ([]*domain.InvoiceSummary, error) {
		rows, err := s.invoices.FindFiltered(ctx, query, InvoicesPerPage, offset)
		if err != nil {
			return nil, application.NewInternalError(err)
		}
		return rows, nil
	})
}

// InvoicePages returns the number of pages the current search spans.
func (s *Service) InvoicePages(ctx context.Context, query string) (int, error) {
	key := fmt.Sprintf("%s?pages&query=%s", application.ViewInvoices, query)
	return cached(s, key, func() (int, error) {
		total, err := s.invoices.CountFiltered(ctx, query)
		if err != nil {
			return 0, application.NewInternalError(err)
		}
		return (total + InvoicesPerPage - 1) / InvoicesPerPage, nil
	})
}

// InvoiceByID fetches a single invoice for the edit form. Never cached: the
// edit form must always see current field values.
func (s *Service) InvoiceByID(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return nil, application.NewNotFoundError("invoice")
		}
		return nil, application.NewInternalError(err)
	}
	return invoice, nil
}

// LatestInvoices returns the five most recent invoices for the overview card.
func (s *Service) LatestInvoices(ctx context.Context) ([]*domain.InvoiceSummary, error) {
	key := application.ViewInvoices + "?latest"
	return cached(s, key, func() ([]*domain.InvoiceSummary, error) {
		rows, err := s.invoices.FindLatest(ctx, latestInvoicesLimit)
		if err != nil {
			return nil, application.NewInternalError(err)
		}
		return rows, nil
	})
}

// CardData returns the invoice and customer totals for the overview cards.
func (s *Service) CardData(ctx context.Context) (*domain.CardData, error) {
	key := application.ViewInvoices + "?cards"
	return cached(s, key, func() (*domain.CardData, error) {
		data, err := s.invoices.CardData(ctx)
		if err != nil {
			return nil, application.NewInternalError(err)
		}
		return data, nil
	})
}

// Revenue returns the last twelve monthly revenue buckets for the chart.
func (s *Service) Revenue(ctx context.Context) ([]*domain.MonthlyRevenue, error) {
	key := application.ViewInvoices + "?revenue"
	return cached(s, key, func() ([]*domain.MonthlyRevenue, error) {
		rows, err := s.invoices.RevenueByMonth(ctx, 12)
		if err != nil {
			return nil, application.NewInternalError(err)
		}
		return rows, nil
	})
}

// Customers returns every customer, sorted by name, for the invoice form's
// customer picker.
func (s *Service) Customers(ctx context.Context) ([]*domain.Customer, error) {
	key := application.ViewCustomers
	return cached(s, key, func() ([]*domain.Customer, error) {
		rows, err := s.customers.FindAll(ctx)
		if err != nil {
			return nil, application.NewInternalError(err)
		}
		return rows, nil
	})
}
