package handlers

import (
	"net/http"

	"github.com/finboard/finboard/internal/interfaces/rest"
)

type customerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

func (h *Handlers) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.queries.Customers(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	out := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerResponse{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}
	rest.WriteJSON(w, http.StatusOK, out)
}
