package handler

import (
	"net/http"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
	apiErrors "github.com/Bigyayos/TiendaControl/pkg/apiErrors"
)

func ListEmployees(repo storage.EmployeeRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeIDQuery(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro storeId inválido", nil)
			return
		}

		employees, err := repo.ListEmployees(storeID)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, employees)
	}
}

func GetEmployee(repo storage.EmployeeRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de empleado inválido", nil)
			return
		}

		employee, err := repo.GetEmployeeByID(id)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, employee)
	}
}

func CreateEmployee(repo storage.EmployeeRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var employee *domain.Employee

		if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if employee.Name == "" || employee.Email == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nombre y email son obligatorios", nil)
			return
		}

		if employee.Role == "" {
			employee.Role = domain.RoleVendedor
		}
		if !domain.ValidRole(employee.Role) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Rol inválido. Valores aceptados: manager, vendedor", nil)
			return
		}

		created, err := repo.CreateEmployee(employee)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateEmployee(repo storage.EmployeeRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de empleado inválido", nil)
			return
		}

		var req *domain.UpdateEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if req.IsEmpty() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La actualización debe traer al menos un campo", nil)
			return
		}

		if req.Role != nil && !domain.ValidRole(*req.Role) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Rol inválido. Valores aceptados: manager, vendedor", nil)
			return
		}

		updated, err := repo.UpdateEmployee(id, req)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteEmployee(repo storage.EmployeeRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de empleado inválido", nil)
			return
		}

		if err := repo.DeleteEmployee(id); err != nil {
			handleStorageError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
