package rowmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected string
	}{
		{
			name:     "Variante española tiene prioridad",
			row:      Row{"nombre": "Centro", "name": "Downtown"},
			expected: "Centro",
		},
		{
			name:     "Cae a la variante inglesa",
			row:      Row{"name": "Downtown"},
			expected: "Downtown",
		},
		{
			name:     "Valor nulo cuenta como ausente",
			row:      Row{"nombre": nil, "name": "Downtown"},
			expected: "Downtown",
		},
		{
			name:     "Sin variante presente devuelve el defecto",
			row:      Row{"direccion": "Calle Mayor 1"},
			expected: "Por asignar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, String(tt.row, "Por asignar", "nombre", "name"))
		})
	}
}

func TestInt(t *testing.T) {
	// Los números JSON decodificados llegan como float64
	assert.Equal(t, 8, Int(Row{"empleados": float64(8)}, 0, "empleados", "employees"))
	assert.Equal(t, 5, Int(Row{"employees": 5}, 0, "empleados", "employees"))
	assert.Equal(t, 0, Int(Row{}, 0, "empleados", "employees"))
	assert.Equal(t, 3, Int(Row{"empleados": "ocho"}, 3, "empleados"))
}

func TestIntPtr(t *testing.T) {
	ptr := IntPtr(Row{"tienda_id": float64(2)}, "tienda_id", "store_id")
	if assert.NotNil(t, ptr) {
		assert.Equal(t, 2, *ptr)
	}

	assert.Nil(t, IntPtr(Row{"tienda_id": nil}, "tienda_id", "store_id"))
	assert.Nil(t, IntPtr(Row{}, "tienda_id", "store_id"))
}

func TestBool(t *testing.T) {
	assert.False(t, Bool(Row{"activa": false, "is_active": true}, true, "activa", "is_active"))
	assert.True(t, Bool(Row{"is_active": true}, false, "activa", "is_active"))
	assert.True(t, Bool(Row{}, true, "activa", "is_active"))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected string
	}{
		{
			name:     "Decimal como string se conserva literal",
			row:      Row{"monto": "1250.50"},
			expected: "1250.50",
		},
		{
			name:     "Decimal como número JSON se convierte a string",
			row:      Row{"amount": float64(99.9)},
			expected: "99.9",
		},
		{
			name:     "Sin variante presente devuelve el defecto",
			row:      Row{},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Amount(tt.row, "0", "monto", "amount"))
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected time.Time
	}{
		{
			name:     "Fecha corta",
			row:      Row{"fecha": "2025-03-10"},
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Timestamp RFC3339",
			row:      Row{"date": "2025-03-10T15:04:05Z"},
			expected: time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC),
		},
		{
			name:     "Fecha inválida devuelve el instante cero",
			row:      Row{"fecha": "no-es-fecha"},
			expected: time.Time{},
		},
		{
			name:     "Sin variante presente devuelve el instante cero",
			row:      Row{},
			expected: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Time(tt.row, "fecha", "date"))
		})
	}
}
