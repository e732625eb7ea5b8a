package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount convierte un monto decimal-string a float64. Un valor que
// no se puede interpretar vale 0: un registro corrupto no debe abortar
// la agregación del resto del reporte.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
