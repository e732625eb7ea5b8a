package handler

import (
	"net/http"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
	apiErrors "github.com/Bigyayos/TiendaControl/pkg/apiErrors"
	"github.com/Bigyayos/TiendaControl/pkg/utils"
)

// CreateSaleRequest recibe la fecha como string para aceptar tanto
// 2006-01-02 como RFC3339.
type CreateSaleRequest struct {
	StoreID    int    `json:"storeId"`
	EmployeeID *int   `json:"employeeId"`
	Amount     string `json:"amount"`
	Date       string `json:"date"`
}

type UpdateSaleRequest struct {
	StoreID    *int    `json:"storeId"`
	EmployeeID *int    `json:"employeeId"`
	Amount     *string `json:"amount"`
	Date       *string `json:"date"`
}

func ListSales(repo storage.SaleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeIDQuery(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro storeId inválido", nil)
			return
		}

		sales, err := repo.ListSales(storeID)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

func GetSale(repo storage.SaleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de venta inválido", nil)
			return
		}

		sale, err := repo.GetSaleByID(id)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}

func CreateSale(repo storage.SaleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSaleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if req.StoreID <= 0 || req.Amount == "" || req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tienda, monto y fecha son obligatorios", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida. Formatos aceptados: 2006-01-02 o RFC3339", nil)
			return
		}

		sale := &domain.Sale{
			StoreID:    req.StoreID,
			EmployeeID: req.EmployeeID,
			Amount:     req.Amount,
			Date:       *date,
		}

		created, err := repo.CreateSale(sale)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateSale(repo storage.SaleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de venta inválido", nil)
			return
		}

		var req *UpdateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if req.StoreID == nil && req.EmployeeID == nil && req.Amount == nil && req.Date == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La actualización debe traer al menos un campo", nil)
			return
		}

		update := &domain.UpdateSaleRequest{
			StoreID:    req.StoreID,
			EmployeeID: req.EmployeeID,
			Amount:     req.Amount,
		}

		if req.Date != nil {
			date, err := utils.ParseDate(*req.Date)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida. Formatos aceptados: 2006-01-02 o RFC3339", nil)
				return
			}
			update.Date = date
		}

		updated, err := repo.UpdateSale(id, update)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteSale(repo storage.SaleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de venta inválido", nil)
			return
		}

		if err := repo.DeleteSale(id); err != nil {
			handleStorageError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
