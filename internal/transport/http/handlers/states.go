package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-traffic-news/internal/models"
)

// StateInfo — элемент ответа GET /states.
type StateInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ListStates отдаёт закрытый список федеральных земель.
func (h *Handlers) ListStates(w http.ResponseWriter, r *http.Request) {
	states := models.States()
	out := make([]StateInfo, 0, len(states))
	for _, s := range states {
		out = append(out, StateInfo{Code: s.String(), Name: s.Name()})
	}

	writeJSON(w, http.StatusOK, out)
}

// Healthz — liveness.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
