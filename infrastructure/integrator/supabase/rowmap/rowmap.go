// Package rowmap resuelve la deriva de nombres de columnas del backend
// alojado. Cada campo canónico declara una lista ordenada de claves
// candidatas (variante española, variante inglesa, ...) y un valor por
// defecto; una única función de resolución recorre la lista. La
// tolerancia a esquemas mezclados queda así declarativa y testeable en
// lugar de encadenar `row.a || row.b || def` en cada lectura.
package rowmap

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Bigyayos/TiendaControl/pkg/utils"
)

// Row es una fila cruda con nombres de columnas sin normalizar.
type Row = map[string]any

// lookup devuelve el primer valor presente y no nulo entre las claves
// candidatas, en orden de prioridad.
func lookup(row Row, keys []string) (any, bool) {
	for _, key := range keys {
		if value, ok := row[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// String resuelve un campo de texto.
func String(row Row, def string, keys ...string) string {
	value, ok := lookup(row, keys)
	if !ok {
		return def
	}
	if s, ok := value.(string); ok {
		return s
	}
	return def
}

// Int resuelve un campo entero. Los números JSON llegan como float64.
func Int(row Row, def int, keys ...string) int {
	value, ok := lookup(row, keys)
	if !ok {
		return def
	}
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case jsoniter.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

// IntPtr resuelve un campo entero nullable; devuelve nil si no hay
// ninguna variante presente.
func IntPtr(row Row, keys ...string) *int {
	value, ok := lookup(row, keys)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	}
	return nil
}

// Bool resuelve un campo booleano.
func Bool(row Row, def bool, keys ...string) bool {
	value, ok := lookup(row, keys)
	if !ok {
		return def
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return def
}

// Amount resuelve un monto decimal-string. El backend puede devolver
// el decimal como string o como número JSON; en ambos casos el valor
// canónico es string.
func Amount(row Row, def string, keys ...string) string {
	value, ok := lookup(row, keys)
	if !ok {
		return def
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(v)
		if err != nil {
			return def
		}
		return data
	}
	return def
}

// Time resuelve un campo de fecha en formato 2006-01-02 o RFC3339.
// Devuelve el instante cero si ninguna variante trae una fecha válida.
func Time(row Row, keys ...string) time.Time {
	value, ok := lookup(row, keys)
	if !ok {
		return time.Time{}
	}

	s, ok := value.(string)
	if !ok {
		return time.Time{}
	}

	parsed, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return *parsed
}
