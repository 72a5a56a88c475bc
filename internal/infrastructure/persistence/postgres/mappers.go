package postgres

import "github.com/finboard/finboard/internal/domain"

func toDomainInvoice(m InvoiceModel) *domain.Invoice {
	return &domain.Invoice{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		AmountCents: m.Amount,
		Status:      domain.InvoiceStatus(m.Status),
		Date:        m.Date,
	}
}

func toDomainSummary(m InvoiceSummaryModel) *domain.InvoiceSummary {
	return &domain.InvoiceSummary{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		ImageURL:      m.ImageURL,
		AmountCents:   m.Amount,
		Status:        domain.InvoiceStatus(m.Status),
		Date:          m.Date,
	}
}

func toDomainCustomer(m CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		ImageURL: m.ImageURL,
	}
}

func toDomainUser(m UserModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}
