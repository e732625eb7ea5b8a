package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/Bigyayos/TiendaControl/infrastructure/database/postgres"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
)

const (
	employeesTable   = "employees"
	employeesColumns = "id, name, email, role, store_id, is_active, created_at"
)

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) storage.EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

func (r *employeeRepository) ListEmployees(storeID *int) ([]*domain.Employee, error) {
	queryBuilder := squirrel.
		Select(employeesColumns).
		From(employeesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if storeID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"store_id": *storeID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("employees.list", err)
	}

	rows, err := r.conn.Query(context.Background(), query, args...)
	if err != nil {
		return nil, storage.NewDataAccessError("employees.list", err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, storage.NewDataAccessError("employees.list", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, storage.NewDataAccessError("employees.list", err)
	}

	return employees, nil
}

func (r *employeeRepository) GetEmployeeByID(id int) (*domain.Employee, error) {
	query, args, err := squirrel.
		Select(employeesColumns).
		From(employeesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("employees.get", err)
	}

	employee, err := scanEmployee(r.conn.QueryRow(context.Background(), query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, storage.NewDataAccessError("employees.get", err)
	}

	return employee, nil
}

func (r *employeeRepository) CreateEmployee(employee *domain.Employee) (*domain.Employee, error) {
	query, args, err := squirrel.
		Insert(employeesTable).
		Columns("name", "email", "role", "store_id", "is_active").
		Values(employee.Name, employee.Email, employee.Role, nullableInt(employee.StoreID), employee.IsActive).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("employees.create", err)
	}

	err = r.conn.QueryRow(context.Background(), query, args...).Scan(&employee.ID, &employee.CreatedAt)
	if err != nil {
		return nil, storage.NewDataAccessError("employees.create", err)
	}

	return employee, nil
}

func (r *employeeRepository) UpdateEmployee(id int, req *domain.UpdateEmployeeRequest) (*domain.Employee, error) {
	queryBuilder := squirrel.
		Update(employeesTable).
		Where(squirrel.Eq{"id": id})

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}
	if req.Email != nil {
		queryBuilder = queryBuilder.Set("email", *req.Email)
	}
	if req.Role != nil {
		queryBuilder = queryBuilder.Set("role", *req.Role)
	}
	if req.StoreID != nil {
		queryBuilder = queryBuilder.Set("store_id", *req.StoreID)
	}
	if req.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *req.IsActive)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("employees.update", err)
	}

	result, err := r.conn.Exec(context.Background(), query, args...)
	if err != nil {
		return nil, storage.NewDataAccessError("employees.update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storage.NewDataAccessError("employees.update", err)
	}
	if affected == 0 {
		return nil, storage.ErrNotFound
	}

	return r.GetEmployeeByID(id)
}

func (r *employeeRepository) DeleteEmployee(id int) error {
	query, args, err := squirrel.
		Delete(employeesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return storage.NewDataAccessError("employees.delete", err)
	}

	result, err := r.conn.Exec(context.Background(), query, args...)
	if err != nil {
		return storage.NewDataAccessError("employees.delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storage.NewDataAccessError("employees.delete", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	employee := &domain.Employee{}
	var storeID sql.NullInt64

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Role,
		&storeID,
		&employee.IsActive,
		&employee.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if storeID.Valid {
		v := int(storeID.Int64)
		employee.StoreID = &v
	}

	return employee, nil
}

// nullableInt convierte *int en el valor que espera el driver para
// columnas int nullables.
func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
