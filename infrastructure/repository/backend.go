package repository

import (
	"github.com/Bigyayos/TiendaControl/infrastructure/database/postgres"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
)

// NewBackend construye los cuatro repositorios de entidades sobre la
// misma conexión Postgres.
func NewBackend(conn *postgres.Connection) *storage.Backend {
	return &storage.Backend{
		Stores:     NewStoreRepository(conn),
		Employees:  NewEmployeeRepository(conn),
		Sales:      NewSaleRepository(conn),
		Objectives: NewObjectiveRepository(conn),
	}
}
