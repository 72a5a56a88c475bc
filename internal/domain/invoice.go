// Package domain encodes the invoice, customer and user entities of the dashboard.
package domain

import (
	"errors"
	"time"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// ValidStatus reports whether s is one of the two accepted invoice statuses.
func ValidStatus(s string) bool {
	return s == string(StatusPending) || s == string(StatusPaid)
}

// Invoice represents a billed amount owed by a customer.
// AmountCents holds the amount in minor currency units; monetary values are
// never stored as floating point.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
	Date        time.Time
}

func NewInvoice(id, customerID string, amountCents int64, status InvoiceStatus, date time.Time) (*Invoice, error) {
	if id == "" {
		return nil, errors.New("invoice ID is required")
	}
	if customerID == "" {
		return nil, errors.New("customer ID is required")
	}
	if amountCents < 0 {
		return nil, NewInvalidAmountError(amountCents)
	}
	if !ValidStatus(string(status)) {
		return nil, NewInvalidStatusError(string(status))
	}

	return &Invoice{
		ID:          id,
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
		Date:        date,
	}, nil
}

// InvoiceSummary is an invoice joined with the customer it references,
// as listed on the invoices table and the latest-invoices card.
type InvoiceSummary struct {
	ID            string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	ImageURL      string
	AmountCents   int64
	Status        InvoiceStatus
	Date          time.Time
}
