package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bigyayos/TiendaControl/internal/domain"
	"github.com/Bigyayos/TiendaControl/pkg/utils"
)

var referenceNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func sale(amount string, date time.Time) *domain.Sale {
	return &domain.Sale{StoreID: 1, Amount: amount, Date: date}
}

func TestSumToday(t *testing.T) {
	sales := []*domain.Sale{
		sale("100.50", referenceNow),
		sale("50.00", referenceNow.Add(-2*time.Hour)), // mismo día, otra hora
		sale("999.99", referenceNow.AddDate(0, 0, -1)),
	}

	assert.Equal(t, 150.50, SumToday(sales, referenceNow))
}

func TestSumTrailingWeek(t *testing.T) {
	sales := []*domain.Sale{
		sale("100.00", referenceNow),
		sale("200.00", referenceNow.AddDate(0, 0, -7)), // extremo inclusive
		sale("400.00", referenceNow.AddDate(0, 0, -8)), // fuera de la ventana
	}

	assert.Equal(t, 300.00, SumTrailingWeek(sales, referenceNow))
}

func TestSumTrailingWeek_VentaFutura(t *testing.T) {
	// El corte es sólo inferior: una venta registrada con fecha futura
	// también entra en la semana
	sales := []*domain.Sale{
		sale("100.00", referenceNow.AddDate(0, 0, 1)),
	}

	assert.Equal(t, 100.00, SumTrailingWeek(sales, referenceNow))
}

func TestSumCurrentMonth(t *testing.T) {
	sales := []*domain.Sale{
		sale("100.00", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		sale("200.00", time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)),
		sale("400.00", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)),
		sale("800.00", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)), // mismo mes, otro año
	}

	assert.Equal(t, 300.00, SumCurrentMonth(sales, referenceNow))
}

func TestSum_MontoIlegibleValeCero(t *testing.T) {
	// Un registro corrupto no aborta la agregación del resto
	sales := []*domain.Sale{
		sale("100.00", referenceNow),
		sale("no-es-numero", referenceNow),
		sale("", referenceNow),
	}

	assert.Equal(t, 100.00, SumToday(sales, referenceNow))
	assert.Equal(t, 100.00, SumTrailingWeek(sales, referenceNow))
	assert.Equal(t, 100.00, SumCurrentMonth(sales, referenceNow))
}

func TestSumToday_ParticionaElTotal(t *testing.T) {
	// El total de hoy más lo estrictamente anterior y lo estrictamente
	// posterior debe reconstruir el total de todas las ventas
	sales := []*domain.Sale{
		sale("100.00", referenceNow.AddDate(0, 0, -3)),
		sale("50.25", referenceNow.Add(-3*time.Hour)),
		sale("75.75", referenceNow),
		sale("30.00", referenceNow.AddDate(0, 0, 2)),
		sale("no-es-numero", referenceNow),
	}

	var total, before, after float64
	for _, s := range sales {
		amount := utils.ParseAmount(s.Amount)
		total += amount

		switch {
		case utils.SameCalendarDay(s.Date, referenceNow):
		case s.Date.Before(referenceNow):
			before += amount
		default:
			after += amount
		}
	}

	today := SumToday(sales, referenceNow)
	assert.Equal(t, 126.00, today)
	assert.Equal(t, total, today+before+after)
}

func TestSum_IndependienteDelOrden(t *testing.T) {
	sales := []*domain.Sale{
		sale("10.10", referenceNow),
		sale("20.20", referenceNow),
		sale("30.30", referenceNow),
	}
	reversed := []*domain.Sale{sales[2], sales[1], sales[0]}

	assert.Equal(t, SumToday(sales, referenceNow), SumToday(reversed, referenceNow))
}
