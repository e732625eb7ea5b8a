package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Bigyayos/TiendaControl/internal/scheduler"
	apiErrors "github.com/Bigyayos/TiendaControl/pkg/apiErrors"
)

// Tipos de cron job ejecutables manualmente.
const (
	CronJobTypeDailyDigest = "daily-digest"
)

// CronJobServices contiene los servicios de cron disponibles para
// ejecución manual.
type CronJobServices struct {
	DailyDigestService *scheduler.DailyDigestService
}

// RunCronJob lanza manualmente una cron job específica.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailyDigest:
			if services.DailyDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio del digest diario no disponible", nil)
				return
			}
			services.DailyDigestService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: daily-digest", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job lanzada manualmente")

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		})
	}
}

// GetCronStatus devuelve el estado de las cron jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.DailyDigestService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio del digest diario no disponible", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"daily-digest": services.DailyDigestService.Status(),
		})
	}
}
