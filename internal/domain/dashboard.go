package domain

// CardData backs the four summary cards on the dashboard overview.
type CardData struct {
	InvoiceCount  int
	CustomerCount int
	PaidCents     int64
	PendingCents  int64
}

// MonthlyRevenue is one bucket of the revenue chart.
type MonthlyRevenue struct {
	Month        string
	RevenueCents int64
}
