// Package storage define el contrato de la capa de acceso a datos.
// Dos implementaciones lo cumplen: los repositorios squirrel sobre
// Postgres directo (esquema inglés) y el integrador Supabase/PostgREST
// (tablas en español). Los usecases sólo dependen de estas interfaces.
package storage

import "github.com/Bigyayos/TiendaControl/internal/domain"

type StoreRepository interface {
	ListStores() ([]*domain.Store, error)
	GetStoreByID(id int) (*domain.Store, error)
	CreateStore(store *domain.Store) (*domain.Store, error)
	UpdateStore(id int, req *domain.UpdateStoreRequest) (*domain.Store, error)
	DeleteStore(id int) error
}

type EmployeeRepository interface {
	ListEmployees(storeID *int) ([]*domain.Employee, error)
	GetEmployeeByID(id int) (*domain.Employee, error)
	CreateEmployee(employee *domain.Employee) (*domain.Employee, error)
	UpdateEmployee(id int, req *domain.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(id int) error
}

type SaleRepository interface {
	ListSales(storeID *int) ([]*domain.Sale, error)
	GetSaleByID(id int) (*domain.Sale, error)
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	UpdateSale(id int, req *domain.UpdateSaleRequest) (*domain.Sale, error)
	DeleteSale(id int) error
}

type ObjectiveRepository interface {
	ListObjectives(storeID *int) ([]*domain.Objective, error)
	GetObjectiveByID(id int) (*domain.Objective, error)
	CreateObjective(objective *domain.Objective) (*domain.Objective, error)
	UpdateObjective(id int, req *domain.UpdateObjectiveRequest) (*domain.Objective, error)
	DeleteObjective(id int) error
}

// Backend agrupa los cuatro repositorios de entidades que expone la
// capa de acceso a datos.
type Backend struct {
	Stores     StoreRepository
	Employees  EmployeeRepository
	Sales      SaleRepository
	Objectives ObjectiveRepository
}
