package handlers

import (
	"net/http"
	"time"

	"github.com/finboard/finboard/internal/application/auth"
	"github.com/finboard/finboard/internal/interfaces/rest"
)

// Literal login messages shown to the user. InvalidCredentials is deliberately
// uninformative: unknown email, wrong password and store failure all read the
// same.
const (
	msgInvalidCredentials = "Invalid credentials."
	msgSomethingWentWrong = "Something went wrong."
)

type loginResponse struct {
	Message string `json:"message,omitempty"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		rest.WriteJSON(w, http.StatusBadRequest, loginResponse{Message: msgInvalidCredentials})
		return
	}

	email := r.PostForm.Get("email")
	password := r.PostForm.Get("password")

	outcome, identity := h.flow.Authenticate(r.Context(), email, password)
	switch outcome {
	case auth.OutcomeAuthenticated:
		token, expiresAt, err := h.tokens.IssueSession(*identity)
		if err != nil {
			h.logger.Error("failed to issue session token", "error", err)
			rest.WriteJSON(w, http.StatusInternalServerError, loginResponse{Message: msgSomethingWentWrong})
			return
		}

		http.SetCookie(w, sessionCookie(token, expiresAt))
		w.WriteHeader(http.StatusNoContent)

	case auth.OutcomeInvalidCredentials:
		rest.WriteJSON(w, http.StatusUnauthorized, loginResponse{Message: msgInvalidCredentials})

	default:
		rest.WriteJSON(w, http.StatusInternalServerError, loginResponse{Message: msgSomethingWentWrong})
	}
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, sessionCookie("", time.Unix(0, 0)))
	w.WriteHeader(http.StatusNoContent)
}

func sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
