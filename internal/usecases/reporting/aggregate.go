// Package reporting calcula los agregados del dashboard a partir de
// snapshots completos de ventas, tiendas y empleados.
package reporting

import (
	"time"

	"github.com/Bigyayos/TiendaControl/internal/domain"
	"github.com/Bigyayos/TiendaControl/pkg/utils"
)

// SumToday suma las ventas cuyo día calendario coincide con now.
func SumToday(sales []*domain.Sale, now time.Time) float64 {
	var total float64
	for _, sale := range sales {
		if utils.SameCalendarDay(sale.Date, now) {
			total += utils.ParseAmount(sale.Amount)
		}
	}
	return utils.RoundWithTwoDecimalPlace(total)
}

// SumTrailingWeek suma las ventas desde now-7d inclusive. El corte es
// sólo inferior: una venta con fecha futura también cuenta.
func SumTrailingWeek(sales []*domain.Sale, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -7)

	var total float64
	for _, sale := range sales {
		if !sale.Date.Before(cutoff) {
			total += utils.ParseAmount(sale.Amount)
		}
	}
	return utils.RoundWithTwoDecimalPlace(total)
}

// SumCurrentMonth suma las ventas del mes calendario de now.
func SumCurrentMonth(sales []*domain.Sale, now time.Time) float64 {
	year, month, _ := now.Date()

	var total float64
	for _, sale := range sales {
		saleYear, saleMonth, _ := sale.Date.Date()
		if saleYear == year && saleMonth == month {
			total += utils.ParseAmount(sale.Amount)
		}
	}
	return utils.RoundWithTwoDecimalPlace(total)
}
