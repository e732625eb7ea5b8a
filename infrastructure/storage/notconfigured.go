package storage

import "github.com/Bigyayos/TiendaControl/internal/domain"

// NewNotConfiguredBackend devuelve una capa de acceso a datos cuyas
// operaciones responden siempre ErrNotConfigured. Permite que el
// proceso arranque sin credenciales del backend y siga sirviendo
// healthcheck y login mientras la API de datos responde 503.
func NewNotConfiguredBackend() *Backend {
	repo := notConfiguredRepository{}
	return &Backend{
		Stores:     repo,
		Employees:  repo,
		Sales:      repo,
		Objectives: repo,
	}
}

type notConfiguredRepository struct{}

func (notConfiguredRepository) ListStores() ([]*domain.Store, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) GetStoreByID(int) (*domain.Store, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) CreateStore(*domain.Store) (*domain.Store, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) UpdateStore(int, *domain.UpdateStoreRequest) (*domain.Store, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) DeleteStore(int) error {
	return ErrNotConfigured
}

func (notConfiguredRepository) ListEmployees(*int) ([]*domain.Employee, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) GetEmployeeByID(int) (*domain.Employee, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) CreateEmployee(*domain.Employee) (*domain.Employee, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) UpdateEmployee(int, *domain.UpdateEmployeeRequest) (*domain.Employee, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) DeleteEmployee(int) error {
	return ErrNotConfigured
}

func (notConfiguredRepository) ListSales(*int) ([]*domain.Sale, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) GetSaleByID(int) (*domain.Sale, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) CreateSale(*domain.Sale) (*domain.Sale, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) UpdateSale(int, *domain.UpdateSaleRequest) (*domain.Sale, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) DeleteSale(int) error {
	return ErrNotConfigured
}

func (notConfiguredRepository) ListObjectives(*int) ([]*domain.Objective, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) GetObjectiveByID(int) (*domain.Objective, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) CreateObjective(*domain.Objective) (*domain.Objective, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) UpdateObjective(int, *domain.UpdateObjectiveRequest) (*domain.Objective, error) {
	return nil, ErrNotConfigured
}

func (notConfiguredRepository) DeleteObjective(int) error {
	return ErrNotConfigured
}
