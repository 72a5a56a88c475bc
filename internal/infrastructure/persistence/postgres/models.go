package postgres

import "time"

// Row models mirror the table layout; mappers.go converts them to domain types.

type InvoiceModel struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     string
	Date       time.Time
}

type InvoiceSummaryModel struct {
	ID            string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	ImageURL      string
	Amount        int64
	Status        string
	Date          time.Time
}

type CustomerModel struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

type UserModel struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}
