package actions

import (
	"strings"

	"github.com/finboard/finboard/internal/domain"
)

// Form field names as submitted by the invoice forms.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountTooSmall = "Please enter an amount more than $0."
	msgSelectStatus   = "Please select an invoice status."
)

// InvoiceForm is the typed result of a valid invoice mutation form. The
// amount is already coerced to minor units; nothing downstream re-parses raw
// strings.
type InvoiceForm struct {
	CustomerID  string
	AmountCents int64
	Status      domain.InvoiceStatus
}

// ParseInvoiceForm validates the fields shared by create and update. The
// identifier and date are never part of the form: create generates both,
// update takes the identifier from the route and leaves the date untouched.
//
// All fields are checked in one pass; a form with three bad fields reports
// all three. A nil FieldErrors return means the form is valid.
func ParseInvoiceForm(fields map[string]string) (InvoiceForm, FieldErrors) {
	errs := FieldErrors{}

	customerID := strings.TrimSpace(fields[FieldCustomerID])
	if customerID == "" {
		errs.add(FieldCustomerID, msgSelectCustomer)
	}

	cents, err := domain.ParseCents(fields[FieldAmount])
	if err != nil || cents <= 0 {
		errs.add(FieldAmount, msgAmountTooSmall)
	}

	status := fields[FieldStatus]
	if !domain.ValidStatus(status) {
		errs.add(FieldStatus, msgSelectStatus)
	}

	if len(errs) > 0 {
		return InvoiceForm{}, errs
	}

	return InvoiceForm{
		CustomerID:  customerID,
		AmountCents: cents,
		Status:      domain.InvoiceStatus(status),
	}, nil
}
