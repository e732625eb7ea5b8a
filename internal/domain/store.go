// Package domain contiene las estructuras de datos del dominio de la aplicación
package domain

import "time"

// Store representa una tienda de la cadena en su forma canónica,
// independiente de la convención de nombres de columnas del backend.
type Store struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Manager          string    `json:"manager"`
	Employees        int       `json:"employees"`
	IsActive         bool      `json:"isActive"`
	MonthlyObjective string    `json:"monthlyObjective"` // decimal como string, ej. "12500.00"
	CreatedAt        time.Time `json:"createdAt"`
}

// UpdateStoreRequest permite actualizaciones parciales o totales de una tienda.
// Los campos nil se dejan sin modificar.
type UpdateStoreRequest struct {
	Name             *string `json:"name"`
	Address          *string `json:"address"`
	Manager          *string `json:"manager"`
	Employees        *int    `json:"employees"`
	IsActive         *bool   `json:"isActive"`
	MonthlyObjective *string `json:"monthlyObjective"`
}

// IsEmpty indica que la actualización no trae ningún campo.
func (r *UpdateStoreRequest) IsEmpty() bool {
	return r.Name == nil && r.Address == nil && r.Manager == nil &&
		r.Employees == nil && r.IsActive == nil && r.MonthlyObjective == nil
}

const (
	// UnknownStoreName es el centinela que se devuelve cuando un storeId
	// no resuelve a ninguna tienda existente.
	UnknownStoreName = "Tienda desconocida"

	// UnassignedManager se usa cuando la fila no trae gerente.
	UnassignedManager = "Por asignar"
)
