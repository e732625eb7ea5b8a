// Package handler contiene los handlers HTTP de la API y su registro
// de rutas.
package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	apiErrors "github.com/Bigyayos/TiendaControl/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Error al enviar la respuesta")
	}
}

// pathID extrae y valida el parámetro :id de la ruta.
func pathID(r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// storeIDQuery interpreta el filtro opcional ?storeId=. El segundo
// resultado indica si el valor recibido era inválido.
func storeIDQuery(r *http.Request) (*int, bool) {
	raw := r.URL.Query().Get("storeId")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil, false
	}

	return &id, true
}

// handleStorageError traduce los errores de la capa de acceso a datos
// al código de API correspondiente.
func handleStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Recurso no encontrado", nil)

	case errors.Is(err, storage.ErrNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Backend de datos no configurado", nil)

	default:
		logrus.WithError(err).Error("Error de acceso a datos")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error de acceso a datos", nil)
	}
}
