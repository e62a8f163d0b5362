package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const (
	table = "appointments"

	// uniqueViolation код ошибки PostgreSQL 23505
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"service_id",
	"client_name",
	"client_email",
	"appointment_date",
	"start_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей в PostgreSQL
type Repository struct {
	db       DBExecutor
	location *time.Location
}

// NewRepository создает новый экземпляр репозитория записей.
// Даты из колонки DATE возвращаются в location бизнеса.
func NewRepository(db DBExecutor, location *time.Location) *Repository {
	if location == nil {
		location = time.Local
	}
	return &Repository{db: db, location: location}
}

// Insert сохраняет новую запись. ID назначается журналом.
func (r *Repository) Insert(ctx context.Context, a *domain.Appointment) error {
	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			a.ID,
			a.ServiceID,
			a.ClientName,
			a.ClientEmail,
			a.DateKey(),
			a.Time,
			string(a.Status),
			a.CreatedAt,
			a.UpdatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: id=%s", ErrDuplicateID, a.ID)
		}
		return fmt.Errorf("%w: Insert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// UpdateStatus меняет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, updatedAt time.Time) error {
	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// ListByDate все записи на дату (любой статус) по возрастанию времени
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListByDate",
		squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)},
	)
}

// ListByPeriod записи с from по to включительно
func (r *Repository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListByPeriod", squirrel.And{
		squirrel.GtOrEq{"appointment_date": from.Format(domain.DateFormat)},
		squirrel.LtOrEq{"appointment_date": to.Format(domain.DateFormat)},
	})
}

// ListScheduledFrom запланированные записи начиная с даты from включительно
func (r *Repository) ListScheduledFrom(ctx context.Context, from time.Time) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListScheduledFrom", squirrel.And{
		squirrel.Eq{"status": string(domain.StatusScheduled)},
		squirrel.GtOrEq{"appointment_date": from.Format(domain.DateFormat)},
	})
}

// CountScheduledByService считает запланированные записи на услугу
func (r *Repository) CountScheduledByService(ctx context.Context, serviceID string) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{
			"service_id": serviceID,
			"status":     string(domain.StatusScheduled),
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountScheduledByService - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountScheduledByService - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("appointment_date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan appointment: %w", ErrScanRow, op, err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scan(row scanner) (*domain.Appointment, error) {
	var (
		a         domain.Appointment
		date      time.Time
		status    string
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.ServiceID,
		&a.ClientName,
		&a.ClientEmail,
		&date,
		&a.Time,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// DATE приходит полночью UTC, переносим календарную дату в часовой пояс бизнеса
	y, m, d := date.Date()
	a.Date = time.Date(y, m, d, 0, 0, 0, 0, r.location)
	a.Status = domain.AppointmentStatus(status)
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}
