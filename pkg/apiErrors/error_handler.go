package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error estandarizados de la API
const (
	// Errores de autenticación (AUTH_xxx)
	ErrInvalidCredentials = "AUTH_001" // Credenciales inválidas
	ErrInvalidToken       = "AUTH_002" // Token inválido o ausente
	ErrExpiredToken       = "AUTH_003" // Token expirado

	// Errores de validación (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Requisición inválida
	ErrMissingRequiredData = "VAL_002" // Datos obligatorios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Errores de recursos (RES_xxx)
	ErrResourceNotFound = "RES_001" // Recurso no encontrado

	// Errores del servidor (SRV_xxx)
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de acceso a datos
	ErrNotConfigured     = "SRV_003" // Backend no configurado
)

// Mapeo de códigos de error a status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrNotConfigured:       http.StatusServiceUnavailable,
}

// APIError representa un error de API estandarizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError crea un error de API a partir de un error Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Error desconocido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
