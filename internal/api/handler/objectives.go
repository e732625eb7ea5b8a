package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
	"github.com/Bigyayos/TiendaControl/internal/usecases/objectives"
	apiErrors "github.com/Bigyayos/TiendaControl/pkg/apiErrors"
	"github.com/Bigyayos/TiendaControl/pkg/utils"
)

type CreateObjectiveRequest struct {
	StoreID   int    `json:"storeId"`
	Period    string `json:"period"`
	Target    string `json:"target"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type UpdateObjectiveRequest struct {
	StoreID   *int    `json:"storeId"`
	Period    *string `json:"period"`
	Target    *string `json:"target"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

func ListObjectives(repo storage.ObjectiveRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeIDQuery(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro storeId inválido", nil)
			return
		}

		result, err := repo.ListObjectives(storeID)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetObjective(repo storage.ObjectiveRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de objetivo inválido", nil)
			return
		}

		objective, err := repo.GetObjectiveByID(id)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, objective)
	}
}

func CreateObjective(repo storage.ObjectiveRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateObjectiveRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if req.StoreID <= 0 || req.Target == "" || req.StartDate == "" || req.EndDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tienda, monto y ventana de fechas son obligatorios", nil)
			return
		}

		if req.Period == "" {
			req.Period = domain.PeriodMensual
		}
		if !domain.ValidPeriod(req.Period) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Periodo inválido. Valores aceptados: diario, semanal, mensual, anual", nil)
			return
		}

		startDate, err := utils.ParseDate(req.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha de inicio inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha de fin inválida", nil)
			return
		}

		objective := &domain.Objective{
			StoreID:   req.StoreID,
			Period:    req.Period,
			Target:    req.Target,
			StartDate: *startDate,
			EndDate:   *endDate,
		}

		created, err := repo.CreateObjective(objective)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateObjective(repo storage.ObjectiveRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de objetivo inválido", nil)
			return
		}

		var req *UpdateObjectiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if req.StoreID == nil && req.Period == nil && req.Target == nil && req.StartDate == nil && req.EndDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La actualización debe traer al menos un campo", nil)
			return
		}

		if req.Period != nil && !domain.ValidPeriod(*req.Period) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Periodo inválido. Valores aceptados: diario, semanal, mensual, anual", nil)
			return
		}

		update := &domain.UpdateObjectiveRequest{
			StoreID: req.StoreID,
			Period:  req.Period,
			Target:  req.Target,
		}

		if req.StartDate != nil {
			startDate, err := utils.ParseDate(*req.StartDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha de inicio inválida", nil)
				return
			}
			update.StartDate = startDate
		}

		if req.EndDate != nil {
			endDate, err := utils.ParseDate(*req.EndDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha de fin inválida", nil)
				return
			}
			update.EndDate = endDate
		}

		updated, err := repo.UpdateObjective(id, update)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteObjective(repo storage.ObjectiveRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de objetivo inválido", nil)
			return
		}

		if err := repo.DeleteObjective(id); err != nil {
			handleStorageError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetObjectiveOrProgress despacha el GET de /v1/objectives/:id. El
// router no admite una ruta estática /progress conviviendo con el
// parámetro :id, así que el valor del parámetro decide.
func GetObjectiveOrProgress(repo storage.ObjectiveRepository, service objectives.Evaluator) http.HandlerFunc {
	getObjective := GetObjective(repo)
	getProgress := GetObjectivesProgress(service)

	return func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("id") == "progress" {
			getProgress(w, r)
			return
		}
		getObjective(w, r)
	}
}

// GetObjectivesProgress evalúa el avance de los objetivos contra las
// ventas de su ventana.
func GetObjectivesProgress(service objectives.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeIDQuery(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro storeId inválido", nil)
			return
		}

		progress, err := service.Progress(storeID)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}
