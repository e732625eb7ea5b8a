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
	objectivesTable   = "objectives"
	objectivesColumns = "id, store_id, period, target::text, start_date, end_date, created_at"
)

type objectiveRepository struct {
	conn *postgres.Connection
}

func NewObjectiveRepository(conn *postgres.Connection) storage.ObjectiveRepository {
	return &objectiveRepository{
		conn: conn,
	}
}

func (r *objectiveRepository) ListObjectives(storeID *int) ([]*domain.Objective, error) {
	queryBuilder := squirrel.
		Select(objectivesColumns).
		From(objectivesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if storeID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"store_id": *storeID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.list", err)
	}

	rows, err := r.conn.Query(context.Background(), query, args...)
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.list", err)
	}
	defer rows.Close()

	objectives := make([]*domain.Objective, 0)
	for rows.Next() {
		objective, err := scanObjective(rows)
		if err != nil {
			return nil, storage.NewDataAccessError("objectives.list", err)
		}
		objectives = append(objectives, objective)
	}

	if err = rows.Err(); err != nil {
		return nil, storage.NewDataAccessError("objectives.list", err)
	}

	return objectives, nil
}

func (r *objectiveRepository) GetObjectiveByID(id int) (*domain.Objective, error) {
	query, args, err := squirrel.
		Select(objectivesColumns).
		From(objectivesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.get", err)
	}

	objective, err := scanObjective(r.conn.QueryRow(context.Background(), query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, storage.NewDataAccessError("objectives.get", err)
	}

	return objective, nil
}

func (r *objectiveRepository) CreateObjective(objective *domain.Objective) (*domain.Objective, error) {
	query, args, err := squirrel.
		Insert(objectivesTable).
		Columns("store_id", "period", "target", "start_date", "end_date").
		Values(objective.StoreID, objective.Period, objective.Target, objective.StartDate, objective.EndDate).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.create", err)
	}

	err = r.conn.QueryRow(context.Background(), query, args...).Scan(&objective.ID, &objective.CreatedAt)
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.create", err)
	}

	return objective, nil
}

func (r *objectiveRepository) UpdateObjective(id int, req *domain.UpdateObjectiveRequest) (*domain.Objective, error) {
	queryBuilder := squirrel.
		Update(objectivesTable).
		Where(squirrel.Eq{"id": id})

	if req.StoreID != nil {
		queryBuilder = queryBuilder.Set("store_id", *req.StoreID)
	}
	if req.Period != nil {
		queryBuilder = queryBuilder.Set("period", *req.Period)
	}
	if req.Target != nil {
		queryBuilder = queryBuilder.Set("target", *req.Target)
	}
	if req.StartDate != nil {
		queryBuilder = queryBuilder.Set("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		queryBuilder = queryBuilder.Set("end_date", *req.EndDate)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.update", err)
	}

	result, err := r.conn.Exec(context.Background(), query, args...)
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storage.NewDataAccessError("objectives.update", err)
	}
	if affected == 0 {
		return nil, storage.ErrNotFound
	}

	return r.GetObjectiveByID(id)
}

func (r *objectiveRepository) DeleteObjective(id int) error {
	query, args, err := squirrel.
		Delete(objectivesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return storage.NewDataAccessError("objectives.delete", err)
	}

	result, err := r.conn.Exec(context.Background(), query, args...)
	if err != nil {
		return storage.NewDataAccessError("objectives.delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storage.NewDataAccessError("objectives.delete", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func scanObjective(row rowScanner) (*domain.Objective, error) {
	objective := &domain.Objective{}

	err := row.Scan(
		&objective.ID,
		&objective.StoreID,
		&objective.Period,
		&objective.Target,
		&objective.StartDate,
		&objective.EndDate,
		&objective.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return objective, nil
}
