package handler

import (
	"net/http"

	"github.com/Bigyayos/TiendaControl/internal/usecases/reporting"
)

// GetDashboardStats calcula los agregados del dashboard bajo demanda.
func GetDashboardStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.DashboardStats()
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
