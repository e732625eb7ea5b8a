package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bigyayos/TiendaControl/internal/domain"
)

func TestNotConfiguredBackend_TodoRespondeNoConfigurado(t *testing.T) {
	backend := NewNotConfiguredBackend()

	_, err := backend.Stores.ListStores()
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Stores.GetStoreByID(1)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Stores.CreateStore(&domain.Store{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Stores.UpdateStore(1, &domain.UpdateStoreRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, backend.Stores.DeleteStore(1), ErrNotConfigured)

	_, err = backend.Employees.ListEmployees(nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Employees.GetEmployeeByID(1)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Employees.CreateEmployee(&domain.Employee{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Employees.UpdateEmployee(1, &domain.UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, backend.Employees.DeleteEmployee(1), ErrNotConfigured)

	_, err = backend.Sales.ListSales(nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Sales.GetSaleByID(1)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Sales.CreateSale(&domain.Sale{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Sales.UpdateSale(1, &domain.UpdateSaleRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, backend.Sales.DeleteSale(1), ErrNotConfigured)

	_, err = backend.Objectives.ListObjectives(nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Objectives.GetObjectiveByID(1)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Objectives.CreateObjective(&domain.Objective{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.Objectives.UpdateObjective(1, &domain.UpdateObjectiveRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, backend.Objectives.DeleteObjective(1), ErrNotConfigured)
}
