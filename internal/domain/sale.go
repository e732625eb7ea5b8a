package domain

import "time"

// Sale representa una venta registrada en una tienda.
// El monto viaja como decimal-string para evitar redondeos binarios
// en tránsito; la capa de reporting lo convierte a numérico.
type Sale struct {
	ID         int       `json:"id"`
	StoreID    int       `json:"storeId"`
	EmployeeID *int      `json:"employeeId"` // nullable
	Amount     string    `json:"amount"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UpdateSaleRequest struct {
	StoreID    *int       `json:"storeId"`
	EmployeeID *int       `json:"employeeId"`
	Amount     *string    `json:"amount"`
	Date       *time.Time `json:"date"`
}

// IsEmpty indica que la actualización no trae ningún campo.
func (r *UpdateSaleRequest) IsEmpty() bool {
	return r.StoreID == nil && r.EmployeeID == nil && r.Amount == nil && r.Date == nil
}
