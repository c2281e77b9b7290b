package handlers

import (
	"net/http"
)

// GetStats - диагностика для администратора: количество строк по таблицам
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.StatsService.GetRowCounts(r.Context())
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tables":  counts,
	})
}
