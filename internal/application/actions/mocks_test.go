package actions

import (
	"context"
	"sync"

	"github.com/finboard/finboard/internal/domain"
)

// MockInvoiceRepository is an in-memory stand-in for the invoice store.
// Individual Fn hooks override behavior per test.
type MockInvoiceRepository struct {
	mu       sync.Mutex
	invoices map[string]*domain.Invoice

	InsertFn func(ctx context.Context, invoice *domain.Invoice) error
	UpdateFn func(ctx context.Context, id, customerID string, amountCents int64, status domain.InvoiceStatus) (int64, error)
	DeleteFn func(ctx context.Context, id string) (int64, error)
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{invoices: make(map[string]*domain.Invoice)}
}

func (m *MockInvoiceRepository) Insert(ctx context.Context, invoice *domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertFn != nil {
		return m.InsertFn(ctx, invoice)
	}
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id, customerID string, amountCents int64, status domain.InvoiceStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, customerID, amountCents, status)
	}
	inv, ok := m.invoices[id]
	if !ok {
		return 0, nil
	}
	inv.CustomerID = customerID
	inv.AmountCents = amountCents
	inv.Status = status
	return 1, nil
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.invoices[id]; !ok {
		return 0, nil
	}
	delete(m.invoices, id)
	return 1, nil
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) FindFiltered(ctx context.Context, query string, limit, offset int) ([]*domain.InvoiceSummary, error) {
	return nil, nil
}

func (m *MockInvoiceRepository) CountFiltered(ctx context.Context, query string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.invoices), nil
}

func (m *MockInvoiceRepository) FindLatest(ctx context.Context, limit int) ([]*domain.InvoiceSummary, error) {
	return nil, nil
}

func (m *MockInvoiceRepository) CardData(ctx context.Context) (*domain.CardData, error) {
	return &domain.CardData{}, nil
}

func (m *MockInvoiceRepository) RevenueByMonth(ctx context.Context, months int) ([]*domain.MonthlyRevenue, error) {
	return nil, nil
}

// Stored returns the invoice held under id, or nil.
func (m *MockInvoiceRepository) Stored(id string) *domain.Invoice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.invoices[id]
}

func (m *MockInvoiceRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.invoices)
}

func (m *MockInvoiceRepository) Put(invoice *domain.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[invoice.ID] = invoice
}

// MockViewCache records invalidations.
type MockViewCache struct {
	mu          sync.Mutex
	Invalidated []string
}

func (m *MockViewCache) Get(key string) (any, bool) { return nil, false }

func (m *MockViewCache) Set(key string, value any) {}

func (m *MockViewCache) Invalidate(viewKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Invalidated = append(m.Invalidated, viewKey)
}

func (m *MockViewCache) InvalidatedKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Invalidated...)
}
