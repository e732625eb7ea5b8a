package supabase

import (
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/rowmap"
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/supabaseclient"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
)

type storeRepository struct {
	client supabaseclient.Client
}

func NewStoreRepository(client supabaseclient.Client) storage.StoreRepository {
	return &storeRepository{
		client: client,
	}
}

func (r *storeRepository) ListStores() ([]*domain.Store, error) {
	rows, err := r.client.From(tableStores).Order("id", true).Select()
	if err != nil {
		return nil, storage.NewDataAccessError("stores.list", err)
	}

	stores := make([]*domain.Store, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, normalizeStore(row))
	}

	return stores, nil
}

func (r *storeRepository) GetStoreByID(id int) (*domain.Store, error) {
	rows, err := r.client.From(tableStores).Eq("id", id).Select()
	if err != nil {
		return nil, storage.NewDataAccessError("stores.get", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return normalizeStore(row), nil
}

func (r *storeRepository) CreateStore(store *domain.Store) (*domain.Store, error) {
	payload := supabaseclient.Row{
		"nombre":           store.Name,
		"direccion":        store.Address,
		"gerente":          store.Manager,
		"empleados":        store.Employees,
		"activa":           store.IsActive,
		"objetivo_mensual": store.MonthlyObjective,
	}

	rows, err := r.client.From(tableStores).Insert(payload)
	if err != nil {
		return nil, storage.NewDataAccessError("stores.create", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.NewDataAccessError("stores.create", errEmptyRepresentation)
	}

	return normalizeStore(row), nil
}

func (r *storeRepository) UpdateStore(id int, req *domain.UpdateStoreRequest) (*domain.Store, error) {
	payload := supabaseclient.Row{}
	if req.Name != nil {
		payload["nombre"] = *req.Name
	}
	if req.Address != nil {
		payload["direccion"] = *req.Address
	}
	if req.Manager != nil {
		payload["gerente"] = *req.Manager
	}
	if req.Employees != nil {
		payload["empleados"] = *req.Employees
	}
	if req.IsActive != nil {
		payload["activa"] = *req.IsActive
	}
	if req.MonthlyObjective != nil {
		payload["objetivo_mensual"] = *req.MonthlyObjective
	}

	rows, err := r.client.From(tableStores).Eq("id", id).Update(payload)
	if err != nil {
		return nil, storage.NewDataAccessError("stores.update", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return normalizeStore(row), nil
}

func (r *storeRepository) DeleteStore(id int) error {
	rows, err := r.client.From(tableStores).Eq("id", id).Delete()
	if err != nil {
		return storage.NewDataAccessError("stores.delete", err)
	}

	if _, ok := firstRow(rows); !ok {
		return storage.ErrNotFound
	}

	return nil
}

// normalizeStore resuelve las variantes de columnas conocidas de la
// tabla Tiendas hacia la forma canónica.
func normalizeStore(row supabaseclient.Row) *domain.Store {
	return &domain.Store{
		ID:               rowmap.Int(row, 0, "id"),
		Name:             rowmap.String(row, "", "nombre", "name"),
		Address:          rowmap.String(row, "", "direccion", "address"),
		Manager:          rowmap.String(row, domain.UnassignedManager, "gerente", "manager"),
		Employees:        rowmap.Int(row, 0, "empleados", "employees"),
		IsActive:         rowmap.Bool(row, true, "activa", "is_active", "isActive"),
		MonthlyObjective: rowmap.Amount(row, "0", "objetivo_mensual", "monthly_objective", "monthlyObjective"),
		CreatedAt:        rowmap.Time(row, "fecha_creacion", "created_at", "createdAt"),
	}
}
