package authenticating

import (
	"errors"
	"fmt"
)

// Errores de autenticación.
var (
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
)

// AuthError es un error con contexto adicional para autenticación.
type AuthError struct {
	Err     error  // Error base
	Code    string // Código de error para la API
	Details string // Detalles adicionales
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indica si el error se debe a credenciales inválidas
// o ausentes, en cuyo caso la API responde 401 sin más detalle.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrMissingRequiredData)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
