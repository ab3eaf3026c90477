package slot

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/psqlbuilder"
)

const slotsTable = "available_slots"

// Repository репозиторий для работы с открытыми окнами площадок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория открытых окон
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое открытое окно
func (r *Repository) Create(ctx context.Context, s *domain.OpenSlot) (*domain.OpenSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(slotsTable).
		Columns("venue_id", "start_time", "end_time").
		Values(s.VenueID, s.StartTime, s.EndTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return s, nil
}

// GetByVenueID получает все открытые окна площадки, отсортированные
// по времени начала
func (r *Repository) GetByVenueID(ctx context.Context, venueID int64) ([]*domain.OpenSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "venue_id", "start_time", "end_time").
		From(slotsTable).
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.OpenSlot, 0)
	for rows.Next() {
		var s domain.OpenSlot
		if err := rows.Scan(&s.ID, &s.VenueID, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetByVenueID - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVenueID - rows error: %v", ErrScanRow, err)
	}
	return slots, nil
}

// Delete удаляет открытое окно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(slotsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}
