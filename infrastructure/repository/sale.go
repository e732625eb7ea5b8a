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
	salesTable = "sales"
	// amount se selecciona como texto para conservar el decimal exacto
	salesColumns = "id, store_id, employee_id, amount::text, date, created_at"
)

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) storage.SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListSales(storeID *int) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select(salesColumns).
		From(salesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if storeID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"store_id": *storeID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("sales.list", err)
	}

	rows, err := r.conn.Query(context.Background(), query, args...)
	if err != nil {
		return nil, storage.NewDataAccessError("sales.list", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, storage.NewDataAccessError("sales.list", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, storage.NewDataAccessError("sales.list", err)
	}

	return sales, nil
}

func (r *saleRepository) GetSaleByID(id int) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(salesColumns).
		From(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("sales.get", err)
	}

	sale, err := scanSale(r.conn.QueryRow(context.Background(), query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, storage.NewDataAccessError("sales.get", err)
	}

	return sale, nil
}

func (r *saleRepository) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("store_id", "employee_id", "amount", "date").
		Values(sale.StoreID, nullableInt(sale.EmployeeID), sale.Amount, sale.Date).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("sales.create", err)
	}

	err = r.conn.QueryRow(context.Background(), query, args...).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return nil, storage.NewDataAccessError("sales.create", err)
	}

	return sale, nil
}

func (r *saleRepository) UpdateSale(id int, req *domain.UpdateSaleRequest) (*domain.Sale, error) {
	queryBuilder := squirrel.
		Update(salesTable).
		Where(squirrel.Eq{"id": id})

	if req.StoreID != nil {
		queryBuilder = queryBuilder.Set("store_id", *req.StoreID)
	}
	if req.EmployeeID != nil {
		queryBuilder = queryBuilder.Set("employee_id", *req.EmployeeID)
	}
	if req.Amount != nil {
		queryBuilder = queryBuilder.Set("amount", *req.Amount)
	}
	if req.Date != nil {
		queryBuilder = queryBuilder.Set("date", *req.Date)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("sales.update", err)
	}

	result, err := r.conn.Exec(context.Background(), query, args...)
	if err != nil {
		return nil, storage.NewDataAccessError("sales.update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storage.NewDataAccessError("sales.update", err)
	}
	if affected == 0 {
		return nil, storage.ErrNotFound
	}

	return r.GetSaleByID(id)
}

func (r *saleRepository) DeleteSale(id int) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return storage.NewDataAccessError("sales.delete", err)
	}

	result, err := r.conn.Exec(context.Background(), query, args...)
	if err != nil {
		return storage.NewDataAccessError("sales.delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storage.NewDataAccessError("sales.delete", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func scanSale(row rowScanner) (*domain.Sale, error) {
	sale := &domain.Sale{}
	var employeeID sql.NullInt64

	err := row.Scan(
		&sale.ID,
		&sale.StoreID,
		&employeeID,
		&sale.Amount,
		&sale.Date,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if employeeID.Valid {
		v := int(employeeID.Int64)
		sale.EmployeeID = &v
	}

	return sale, nil
}
