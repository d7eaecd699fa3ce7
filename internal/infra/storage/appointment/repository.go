package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// UniqueSlotConstraint ограничение, запрещающее двойную запись к мастеру
const UniqueSlotConstraint = "appointments_stylist_start_key"

var selectColumns = []string{
	"a.id",
	"a.stylist_id",
	"a.customer_name",
	"a.customer_phone",
	"a.start_time",
	"a.created_at",
	"st.name",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись одним INSERT
// Двойная запись к мастеру отсекается уникальным ограничением (stylist_id, start_time),
// поэтому проверка и вставка атомарны на уровне БД.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns("id", "stylist_id", "customer_name", "customer_phone", "start_time").
		Values(
			appointment.ID,
			appointment.StylistID,
			appointment.CustomerName,
			appointment.CustomerPhone,
			appointment.StartTime,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.CreatedAt)
	switch {
	case err == nil:
		return appointment, nil
	case pgerr.IsUniqueViolation(err) && pgerr.Constraint(err) == UniqueSlotConstraint:
		return nil, ErrDuplicateSlot
	case pgerr.IsForeignKeyViolation(err):
		return nil, ErrStylistNotFound
	default:
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
}

// GetByID получает запись по ID вместе с именем мастера
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments a").
		Join("stylists st ON st.id = a.stylist_id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// GetByFilter возвращает записи, начинающиеся в окне дня, упорядоченные по времени
func (r *Repository) GetByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(selectColumns...).
		From("appointments a").
		Join("stylists st ON st.id = a.stylist_id").
		Where(squirrel.GtOrEq{"a.start_time": filter.Window.Start}).
		Where(squirrel.Lt{"a.start_time": filter.Window.End})

	if filter.StylistID != nil {
		builder = builder.Where(squirrel.Eq{"a.stylist_id": *filter.StylistID})
	}

	query, args, err := builder.
		OrderBy("a.start_time ASC", "st.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows iteration: %v", ErrExecQuery, err)
	}

	return appointments, nil
}

// GetBookedStylistIDs возвращает мастеров, у которых есть запись ровно на startTime
func (r *Repository) GetBookedStylistIDs(ctx context.Context, startTime time.Time) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("stylist_id").
		From("appointments").
		Where(squirrel.Eq{"start_time": startTime}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedStylistIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedStylistIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetBookedStylistIDs - scan stylist id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedStylistIDs - rows iteration: %v", ErrExecQuery, err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	if err := row.Scan(
		&appointment.ID,
		&appointment.StylistID,
		&appointment.CustomerName,
		&appointment.CustomerPhone,
		&appointment.StartTime,
		&appointment.CreatedAt,
		&appointment.StylistName,
	); err != nil {
		return nil, err
	}
	return &appointment, nil
}
