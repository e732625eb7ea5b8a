// Package repository contiene los repositorios squirrel sobre Postgres
// directo. El esquema de estas tablas usa la convención inglesa
// snake_case; la escritura siempre emite esa convención fija.
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
	storesTable   = "stores"
	storesColumns = "id, name, address, manager, employees, is_active, monthly_objective, created_at"
)

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) storage.StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) ListStores() ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select(storesColumns).
		From(storesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("stores.list", err)
	}

	rows, err := r.conn.Query(context.Background(), query, args...)
	if err != nil {
		return nil, storage.NewDataAccessError("stores.list", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, storage.NewDataAccessError("stores.list", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, storage.NewDataAccessError("stores.list", err)
	}

	return stores, nil
}

func (r *storeRepository) GetStoreByID(id int) (*domain.Store, error) {
	query, args, err := squirrel.
		Select(storesColumns).
		From(storesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("stores.get", err)
	}

	store, err := scanStore(r.conn.QueryRow(context.Background(), query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, storage.NewDataAccessError("stores.get", err)
	}

	return store, nil
}

func (r *storeRepository) CreateStore(store *domain.Store) (*domain.Store, error) {
	query, args, err := squirrel.
		Insert(storesTable).
		Columns("name", "address", "manager", "employees", "is_active", "monthly_objective").
		Values(store.Name, store.Address, store.Manager, store.Employees, store.IsActive, store.MonthlyObjective).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("stores.create", err)
	}

	err = r.conn.QueryRow(context.Background(), query, args...).Scan(&store.ID, &store.CreatedAt)
	if err != nil {
		return nil, storage.NewDataAccessError("stores.create", err)
	}

	return store, nil
}

func (r *storeRepository) UpdateStore(id int, req *domain.UpdateStoreRequest) (*domain.Store, error) {
	queryBuilder := squirrel.
		Update(storesTable).
		Where(squirrel.Eq{"id": id})

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}
	if req.Address != nil {
		queryBuilder = queryBuilder.Set("address", *req.Address)
	}
	if req.Manager != nil {
		queryBuilder = queryBuilder.Set("manager", *req.Manager)
	}
	if req.Employees != nil {
		queryBuilder = queryBuilder.Set("employees", *req.Employees)
	}
	if req.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *req.IsActive)
	}
	if req.MonthlyObjective != nil {
		queryBuilder = queryBuilder.Set("monthly_objective", *req.MonthlyObjective)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("stores.update", err)
	}

	result, err := r.conn.Exec(context.Background(), query, args...)
	if err != nil {
		return nil, storage.NewDataAccessError("stores.update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storage.NewDataAccessError("stores.update", err)
	}
	if affected == 0 {
		return nil, storage.ErrNotFound
	}

	return r.GetStoreByID(id)
}

func (r *storeRepository) DeleteStore(id int) error {
	query, args, err := squirrel.
		Delete(storesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return storage.NewDataAccessError("stores.delete", err)
	}

	result, err := r.conn.Exec(context.Background(), query, args...)
	if err != nil {
		return storage.NewDataAccessError("stores.delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storage.NewDataAccessError("stores.delete", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// rowScanner cubre *sql.Row y *sql.Rows con un único helper de scan.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStore(row rowScanner) (*domain.Store, error) {
	store := &domain.Store{}
	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Address,
		&store.Manager,
		&store.Employees,
		&store.IsActive,
		&store.MonthlyObjective,
		&store.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return store, nil
}
