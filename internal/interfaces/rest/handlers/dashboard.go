package handlers

import (
	"net/http"

	"github.com/finboard/finboard/internal/domain"
	"github.com/finboard/finboard/internal/interfaces/rest"
)

type cardsResponse struct {
	NumberOfInvoices     int    `json:"numberOfInvoices"`
	NumberOfCustomers    int    `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

type revenueResponse struct {
	Month        string `json:"month"`
	RevenueCents int64  `json:"revenue_cents"`
}

func (h *Handlers) DashboardCards(w http.ResponseWriter, r *http.Request) {
	data, err := h.queries.CardData(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, cardsResponse{
		NumberOfInvoices:     data.InvoiceCount,
		NumberOfCustomers:    data.CustomerCount,
		TotalPaidInvoices:    domain.FormatUSD(data.PaidCents),
		TotalPendingInvoices: domain.FormatUSD(data.PendingCents),
	})
}

func (h *Handlers) DashboardRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.queries.Revenue(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	out := make([]revenueResponse, 0, len(revenue))
	for _, m := range revenue {
		out = append(out, revenueResponse{Month: m.Month, RevenueCents: m.RevenueCents})
	}
	rest.WriteJSON(w, http.StatusOK, out)
}

func (h *Handlers) LatestInvoices(w http.ResponseWriter, r *http.Request) {
	latest, err := h.queries.LatestInvoices(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toSummaryResponses(latest))
}
