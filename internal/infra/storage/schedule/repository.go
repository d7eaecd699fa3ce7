package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// Repository репозиторий интервалов работы мастеров
// Интервалы только добавляются, изменение и удаление не поддерживаются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория интервалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет интервал работы
func (r *Repository) Create(ctx context.Context, interval *domain.WorkInterval) (*domain.WorkInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if interval.ID == uuid.Nil {
		interval.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("id", "stylist_id", "start_time", "end_time").
		Values(interval.ID, interval.StylistID, interval.StartTime, interval.EndTime).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&interval.CreatedAt)
	switch {
	case err == nil:
		return interval, nil
	case pgerr.IsForeignKeyViolation(err):
		return nil, ErrStylistNotFound
	case pgerr.IsCheckViolation(err):
		return nil, ErrInvalidRange
	default:
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
}

// GetByFilter возвращает интервалы, пересекающие окно дня, вместе с именем мастера
// Порядок: по началу интервала, затем по порядку создания.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.WorkInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"s.id",
		"s.stylist_id",
		"s.start_time",
		"s.end_time",
		"s.created_at",
		"st.name",
	).
		From("schedules s").
		Join("stylists st ON st.id = s.stylist_id").
		Where(squirrel.Lt{"s.start_time": filter.Window.End}).
		Where(squirrel.Gt{"s.end_time": filter.Window.Start})

	if filter.StylistID != nil {
		builder = builder.Where(squirrel.Eq{"s.stylist_id": *filter.StylistID})
	}

	query, args, err := builder.
		OrderBy("s.start_time ASC", "s.created_at ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]*domain.WorkInterval, 0)
	for rows.Next() {
		var interval domain.WorkInterval
		if err := rows.Scan(
			&interval.ID,
			&interval.StylistID,
			&interval.StartTime,
			&interval.EndTime,
			&interval.CreatedAt,
			&interval.StylistName,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan interval: %v", ErrScanRow, err)
		}
		intervals = append(intervals, &interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows iteration: %v", ErrExecQuery, err)
	}

	return intervals, nil
}

// GetCoveringStylistIDs возвращает мастеров, чей интервал целиком покрывает слот [slotStart, slotStart+30m)
// Порядок: по порядку создания интервалов; мастер может встречаться несколько раз.
func (r *Repository) GetCoveringStylistIDs(ctx context.Context, slotStart time.Time) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("stylist_id").
		From("schedules").
		Where(squirrel.LtOrEq{"start_time": slotStart}).
		Where(squirrel.GtOrEq{"end_time": slotStart.Add(domain.SlotDuration)}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoveringStylistIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoveringStylistIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetCoveringStylistIDs - scan stylist id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCoveringStylistIDs - rows iteration: %v", ErrExecQuery, err)
	}

	return ids, nil
}
