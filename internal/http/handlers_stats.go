package httpx

import (
	"net/http"

	"github.com/Fadhail/petshop-api/internal/service"
)

// StatsHandlers serves the aggregate counts for the landing page.
type StatsHandlers struct {
	Svc *service.StatsService
}

// Overview handles GET /api/stats.
func (h *StatsHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Svc.Overview(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, overview)
}
