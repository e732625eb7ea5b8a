package supabase

import (
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/rowmap"
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/supabaseclient"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
)

type employeeRepository struct {
	client supabaseclient.Client
}

func NewEmployeeRepository(client supabaseclient.Client) storage.EmployeeRepository {
	return &employeeRepository{
		client: client,
	}
}

func (r *employeeRepository) ListEmployees(storeID *int) ([]*domain.Employee, error) {
	query := r.client.From(tableEmployees).Order("id", true)
	if storeID != nil {
		query = query.Eq("tienda_id", *storeID)
	}

	rows, err := query.Select()
	if err != nil {
		return nil, storage.NewDataAccessError("employees.list", err)
	}

	employees := make([]*domain.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, normalizeEmployee(row))
	}

	return employees, nil
}

func (r *employeeRepository) GetEmployeeByID(id int) (*domain.Employee, error) {
	rows, err := r.client.From(tableEmployees).Eq("id", id).Select()
	if err != nil {
		return nil, storage.NewDataAccessError("employees.get", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return normalizeEmployee(row), nil
}

func (r *employeeRepository) CreateEmployee(employee *domain.Employee) (*domain.Employee, error) {
	payload := supabaseclient.Row{
		"nombre": employee.Name,
		"email":  employee.Email,
		"rol":    employee.Role,
		"activo": employee.IsActive,
	}
	if employee.StoreID != nil {
		payload["tienda_id"] = *employee.StoreID
	}

	rows, err := r.client.From(tableEmployees).Insert(payload)
	if err != nil {
		return nil, storage.NewDataAccessError("employees.create", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.NewDataAccessError("employees.create", errEmptyRepresentation)
	}

	return normalizeEmployee(row), nil
}

func (r *employeeRepository) UpdateEmployee(id int, req *domain.UpdateEmployeeRequest) (*domain.Employee, error) {
	payload := supabaseclient.Row{}
	if req.Name != nil {
		payload["nombre"] = *req.Name
	}
	if req.Email != nil {
		payload["email"] = *req.Email
	}
	if req.Role != nil {
		payload["rol"] = *req.Role
	}
	if req.StoreID != nil {
		payload["tienda_id"] = *req.StoreID
	}
	if req.IsActive != nil {
		payload["activo"] = *req.IsActive
	}

	rows, err := r.client.From(tableEmployees).Eq("id", id).Update(payload)
	if err != nil {
		return nil, storage.NewDataAccessError("employees.update", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return normalizeEmployee(row), nil
}

func (r *employeeRepository) DeleteEmployee(id int) error {
	rows, err := r.client.From(tableEmployees).Eq("id", id).Delete()
	if err != nil {
		return storage.NewDataAccessError("employees.delete", err)
	}

	if _, ok := firstRow(rows); !ok {
		return storage.ErrNotFound
	}

	return nil
}

func normalizeEmployee(row supabaseclient.Row) *domain.Employee {
	return &domain.Employee{
		ID:        rowmap.Int(row, 0, "id"),
		Name:      rowmap.String(row, "", "nombre", "name"),
		Email:     rowmap.String(row, "", "email"),
		Role:      rowmap.String(row, domain.RoleVendedor, "rol", "role"),
		StoreID:   rowmap.IntPtr(row, "tienda_id", "store_id", "storeId"),
		IsActive:  rowmap.Bool(row, true, "activo", "is_active", "isActive"),
		CreatedAt: rowmap.Time(row, "fecha_creacion", "created_at", "createdAt"),
	}
}
