package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indica que el id referenciado no existe en el backend.
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrNotConfigured indica que falta el endpoint o la credencial del
	// backend alojado. Se detecta al arranque y se reporta como estado
	// degradado, nunca como crash.
	ErrNotConfigured = errors.New("backend no configurado: faltan URL o credencial")
)

// DataAccessError envuelve un fallo del backend (violación de
// restricción, fallo de red). Se propaga al llamador sin reintentos.
type DataAccessError struct {
	Op  string // operación que falló, ej. "stores.create"
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("error de acceso a datos en %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NewDataAccessError crea un DataAccessError para la operación indicada.
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

// IsNotFound indica si el error corresponde a un id inexistente.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
