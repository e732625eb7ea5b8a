package domain

import "time"

// DashboardStats son los agregados que alimentan las tarjetas del
// dashboard. Se calculan bajo demanda a partir de snapshots completos,
// nunca se materializan en el backend.
type DashboardStats struct {
	TodaySales      float64   `json:"todaySales"`
	WeekSales       float64   `json:"weekSales"`
	MonthSales      float64   `json:"monthSales"`
	TotalStores     int       `json:"totalStores"`
	ActiveStores    int       `json:"activeStores"`
	TotalEmployees  int       `json:"totalEmployees"`
	ActiveEmployees int       `json:"activeEmployees"`
	GeneratedAt     time.Time `json:"generatedAt"`
}
