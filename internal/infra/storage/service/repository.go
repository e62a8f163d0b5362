package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const (
	table = "services"

	// uniqueViolation код ошибки PostgreSQL 23505
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"name",
	"duration_minutes",
	"price",
	"description",
	"category",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую услугу
func (r *Repository) Create(ctx context.Context, s *domain.Service) error {
	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			s.ID,
			s.Name,
			s.DurationMinutes,
			s.Price,
			s.Description,
			s.Category,
			s.Active,
			s.CreatedAt,
			s.UpdatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: id=%s", ErrDuplicateID, s.ID)
		}
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает услугу по ID (в том числе архивную)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %w", ErrScanRow, err)
	}

	return s, nil
}

// List возвращает все услуги в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan service: %w", ErrScanRow, err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// Update перезаписывает изменяемые поля услуги
func (r *Repository) Update(ctx context.Context, s *domain.Service) error {
	query, args, err := psqlbuilder.Update(table).
		Set("name", s.Name).
		Set("duration_minutes", s.DurationMinutes).
		Set("price", s.Price).
		Set("description", s.Description).
		Set("category", s.Category).
		Set("active", s.Active).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Update", query, args)
}

// Delete физически удаляет услугу
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scan(row scanner) (*domain.Service, error) {
	var (
		s         domain.Service
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.DurationMinutes,
		&s.Price,
		&s.Description,
		&s.Category,
		&s.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
