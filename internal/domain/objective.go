package domain

import "time"

// Periodos descriptivos de un objetivo. La ventana real de cálculo
// siempre es StartDate..EndDate, no se deriva del periodo.
const (
	PeriodDiario  = "diario"
	PeriodSemanal = "semanal"
	PeriodMensual = "mensual"
	PeriodAnual   = "anual"
)

// Estados de progreso de un objetivo.
const (
	ObjectiveStatusCompleted  = "completado"
	ObjectiveStatusInProgress = "en_progreso"
	ObjectiveStatusPending    = "pendiente"
)

// Objective es una meta de ventas de una tienda sobre una ventana de
// tiempo acotada e inclusiva.
type Objective struct {
	ID        int       `json:"id"`
	StoreID   int       `json:"storeId"`
	Period    string    `json:"period"`
	Target    string    `json:"target"` // decimal como string
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateObjectiveRequest struct {
	StoreID   *int       `json:"storeId"`
	Period    *string    `json:"period"`
	Target    *string    `json:"target"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// IsEmpty indica que la actualización no trae ningún campo.
func (r *UpdateObjectiveRequest) IsEmpty() bool {
	return r.StoreID == nil && r.Period == nil && r.Target == nil &&
		r.StartDate == nil && r.EndDate == nil
}

// ObjectiveProgress es el resultado de evaluar un objetivo contra las
// ventas de su tienda dentro de la ventana StartDate..EndDate.
type ObjectiveProgress struct {
	Objective    *Objective `json:"objective"`
	StoreName    string     `json:"storeName"`
	CurrentSales float64    `json:"currentSales"`
	Progress     float64    `json:"progress"` // porcentaje, 0..N (puede superar 100)
	Status       string     `json:"status"`
}

// ValidPeriod indica si el periodo recibido es uno de los aceptados.
func ValidPeriod(period string) bool {
	switch period {
	case PeriodDiario, PeriodSemanal, PeriodMensual, PeriodAnual:
		return true
	}
	return false
}
