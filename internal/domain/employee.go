package domain

import "time"

// Roles válidos para un empleado.
const (
	RoleManager  = "manager"
	RoleVendedor = "vendedor"
)

type Employee struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	StoreID   *int      `json:"storeId"` // nullable: un empleado puede no tener tienda asignada
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	StoreID  *int    `json:"storeId"`
	IsActive *bool   `json:"isActive"`
}

// IsEmpty indica que la actualización no trae ningún campo.
func (r *UpdateEmployeeRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Role == nil &&
		r.StoreID == nil && r.IsActive == nil
}

// ValidRole indica si el rol recibido es uno de los aceptados.
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleVendedor
}
