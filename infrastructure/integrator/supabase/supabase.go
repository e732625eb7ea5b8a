// Package supabase implementa la capa de acceso a datos sobre la API
// PostgREST del proyecto alojado. Las tablas históricas están en
// español (Tiendas, Empleados, Ventas, Objetivos) y arrastran filas
// con nombres de columnas mezclados; la lectura normaliza cada fila
// con rowmap y la escritura siempre emite la convención española fija.
package supabase

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/supabaseclient"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
)

// errEmptyRepresentation señala un insert aceptado cuya respuesta no
// trae la fila generada, lo que impediría devolver id y created_at.
var errEmptyRepresentation = errors.New("el backend no devolvió la representación de la fila escrita")

const (
	tableStores     = "Tiendas"
	tableEmployees  = "Empleados"
	tableSales      = "Ventas"
	tableObjectives = "Objetivos"

	dateLayout = "2006-01-02"
)

// NewBackend construye los cuatro repositorios de entidades sobre un
// mismo cliente PostgREST. El cliente se inyecta, no hay singleton.
func NewBackend(client supabaseclient.Client) *storage.Backend {
	return &storage.Backend{
		Stores:     NewStoreRepository(client),
		Employees:  NewEmployeeRepository(client),
		Sales:      NewSaleRepository(client),
		Objectives: NewObjectiveRepository(client),
	}
}

// firstRow devuelve la primera fila de una representación. Una
// representación vacía tras un write filtrado por id significa que el
// id no casa con ninguna fila.
func firstRow(rows []supabaseclient.Row) (supabaseclient.Row, bool) {
	if len(rows) == 0 {
		return nil, false
	}
	return rows[0], true
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
