package domain

// Customer is the party an invoice bills. Referential integrity between
// invoices and customers is enforced by the persistence layer's foreign key,
// not by form validation.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
