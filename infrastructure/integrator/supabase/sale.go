package supabase

import (
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/rowmap"
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/supabaseclient"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
)

type saleRepository struct {
	client supabaseclient.Client
}

func NewSaleRepository(client supabaseclient.Client) storage.SaleRepository {
	return &saleRepository{
		client: client,
	}
}

func (r *saleRepository) ListSales(storeID *int) ([]*domain.Sale, error) {
	// Las ventas se listan de la más reciente a la más antigua.
	query := r.client.From(tableSales).Order("created_at", false)
	if storeID != nil {
		query = query.Eq("tienda_id", *storeID)
	}

	rows, err := query.Select()
	if err != nil {
		return nil, storage.NewDataAccessError("sales.list", err)
	}

	sales := make([]*domain.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, normalizeSale(row))
	}

	return sales, nil
}

func (r *saleRepository) GetSaleByID(id int) (*domain.Sale, error) {
	rows, err := r.client.From(tableSales).Eq("id", id).Select()
	if err != nil {
		return nil, storage.NewDataAccessError("sales.get", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return normalizeSale(row), nil
}

func (r *saleRepository) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	payload := supabaseclient.Row{
		"tienda_id": sale.StoreID,
		"monto":     sale.Amount,
		"fecha":     formatDate(sale.Date),
	}
	if sale.EmployeeID != nil {
		payload["empleado_id"] = *sale.EmployeeID
	}

	rows, err := r.client.From(tableSales).Insert(payload)
	if err != nil {
		return nil, storage.NewDataAccessError("sales.create", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.NewDataAccessError("sales.create", errEmptyRepresentation)
	}

	return normalizeSale(row), nil
}

func (r *saleRepository) UpdateSale(id int, req *domain.UpdateSaleRequest) (*domain.Sale, error) {
	payload := supabaseclient.Row{}
	if req.StoreID != nil {
		payload["tienda_id"] = *req.StoreID
	}
	if req.EmployeeID != nil {
		payload["empleado_id"] = *req.EmployeeID
	}
	if req.Amount != nil {
		payload["monto"] = *req.Amount
	}
	if req.Date != nil {
		payload["fecha"] = formatDate(*req.Date)
	}

	rows, err := r.client.From(tableSales).Eq("id", id).Update(payload)
	if err != nil {
		return nil, storage.NewDataAccessError("sales.update", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return normalizeSale(row), nil
}

func (r *saleRepository) DeleteSale(id int) error {
	rows, err := r.client.From(tableSales).Eq("id", id).Delete()
	if err != nil {
		return storage.NewDataAccessError("sales.delete", err)
	}

	if _, ok := firstRow(rows); !ok {
		return storage.ErrNotFound
	}

	return nil
}

func normalizeSale(row supabaseclient.Row) *domain.Sale {
	return &domain.Sale{
		ID:         rowmap.Int(row, 0, "id"),
		StoreID:    rowmap.Int(row, 0, "tienda_id", "store_id", "storeId"),
		EmployeeID: rowmap.IntPtr(row, "empleado_id", "employee_id", "employeeId"),
		Amount:     rowmap.Amount(row, "0", "monto", "amount"),
		Date:       rowmap.Time(row, "fecha", "date"),
		CreatedAt:  rowmap.Time(row, "fecha_creacion", "created_at", "createdAt"),
	}
}
