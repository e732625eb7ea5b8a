package supabase

import (
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/rowmap"
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/supabaseclient"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
)

type objectiveRepository struct {
	client supabaseclient.Client
}

func NewObjectiveRepository(client supabaseclient.Client) storage.ObjectiveRepository {
	return &objectiveRepository{
		client: client,
	}
}

func (r *objectiveRepository) ListObjectives(storeID *int) ([]*domain.Objective, error) {
	query := r.client.From(tableObjectives).Order("created_at", false)
	if storeID != nil {
		query = query.Eq("tienda_id", *storeID)
	}

	rows, err := query.Select()
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.list", err)
	}

	objectives := make([]*domain.Objective, 0, len(rows))
	for _, row := range rows {
		objectives = append(objectives, normalizeObjective(row))
	}

	return objectives, nil
}

func (r *objectiveRepository) GetObjectiveByID(id int) (*domain.Objective, error) {
	rows, err := r.client.From(tableObjectives).Eq("id", id).Select()
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.get", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return normalizeObjective(row), nil
}

func (r *objectiveRepository) CreateObjective(objective *domain.Objective) (*domain.Objective, error) {
	payload := supabaseclient.Row{
		"tienda_id":    objective.StoreID,
		"tipo":         objective.Period,
		"monto":        objective.Target,
		"fecha_inicio": formatDate(objective.StartDate),
		"fecha_fin":    formatDate(objective.EndDate),
	}

	rows, err := r.client.From(tableObjectives).Insert(payload)
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.create", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.NewDataAccessError("objectives.create", errEmptyRepresentation)
	}

	return normalizeObjective(row), nil
}

func (r *objectiveRepository) UpdateObjective(id int, req *domain.UpdateObjectiveRequest) (*domain.Objective, error) {
	payload := supabaseclient.Row{}
	if req.StoreID != nil {
		payload["tienda_id"] = *req.StoreID
	}
	if req.Period != nil {
		payload["tipo"] = *req.Period
	}
	if req.Target != nil {
		payload["monto"] = *req.Target
	}
	if req.StartDate != nil {
		payload["fecha_inicio"] = formatDate(*req.StartDate)
	}
	if req.EndDate != nil {
		payload["fecha_fin"] = formatDate(*req.EndDate)
	}

	rows, err := r.client.From(tableObjectives).Eq("id", id).Update(payload)
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.update", err)
	}

	row, ok := firstRow(rows)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return normalizeObjective(row), nil
}

func (r *objectiveRepository) DeleteObjective(id int) error {
	rows, err := r.client.From(tableObjectives).Eq("id", id).Delete()
	if err != nil {
		return storage.NewDataAccessError("objectives.delete", err)
	}

	if _, ok := firstRow(rows); !ok {
		return storage.ErrNotFound
	}

	return nil
}

// normalizeObjective resuelve las variantes de la tabla Objetivos. La
// columna del periodo se llama tipo; el monto objetivo apareció
// históricamente como monto, objetivo o target.
func normalizeObjective(row supabaseclient.Row) *domain.Objective {
	return &domain.Objective{
		ID:        rowmap.Int(row, 0, "id"),
		StoreID:   rowmap.Int(row, 0, "tienda_id", "store_id", "storeId"),
		Period:    rowmap.String(row, domain.PeriodMensual, "tipo", "periodo", "period"),
		Target:    rowmap.Amount(row, "0", "monto", "objetivo", "target"),
		StartDate: rowmap.Time(row, "fecha_inicio", "start_date", "startDate"),
		EndDate:   rowmap.Time(row, "fecha_fin", "end_date", "endDate"),
		CreatedAt: rowmap.Time(row, "fecha_creacion", "created_at", "createdAt"),
	}
}
