package handlers

import (
	"net/http"

	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest"
)

// HandleStatus always answers 200; degraded checks are reported in the body.
func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, h.status.Status(r.Context()))
}
