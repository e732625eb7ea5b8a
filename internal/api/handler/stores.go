package handler

import (
	"net/http"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
	apiErrors "github.com/Bigyayos/TiendaControl/pkg/apiErrors"
)

func ListStores(repo storage.StoreRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stores, err := repo.ListStores()
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stores)
	}
}

func GetStore(repo storage.StoreRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de tienda inválido", nil)
			return
		}

		store, err := repo.GetStoreByID(id)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, store)
	}
}

func CreateStore(repo storage.StoreRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var store *domain.Store

		if err := json.NewDecoder(r.Body).Decode(&store); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if store.Name == "" || store.Address == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nombre y dirección son obligatorios", nil)
			return
		}

		if store.Manager == "" {
			store.Manager = domain.UnassignedManager
		}
		if store.MonthlyObjective == "" {
			store.MonthlyObjective = "0"
		}

		created, err := repo.CreateStore(store)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateStore(repo storage.StoreRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de tienda inválido", nil)
			return
		}

		var req *domain.UpdateStoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if req.IsEmpty() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La actualización debe traer al menos un campo", nil)
			return
		}

		updated, err := repo.UpdateStore(id, req)
		if err != nil {
			handleStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteStore(repo storage.StoreRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de tienda inválido", nil)
			return
		}

		if err := repo.DeleteStore(id); err != nil {
			handleStorageError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
