package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

var barberColumns = []string{
	"id",
	"user_id",
	"full_name",
	"phone",
	"manual_location",
	"haircut_duration_minutes",
	"open_time",
	"close_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с профилями барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый профиль барбера
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, barber *domain.Barber) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barbers").
		Columns(
			"user_id",
			"full_name",
			"phone",
			"manual_location",
			"haircut_duration_minutes",
			"open_time",
			"close_time",
		).
		Values(
			barber.UserID,
			barber.FullName,
			barber.Phone,
			barber.ManualLocation,
			barber.HaircutDurationMinutes,
			barber.OpenTime,
			barber.CloseTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrBarberAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return barber, nil
}

// GetByID получает барбера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByUserID получает барбера по ID пользователя во внешнем сервисе профилей
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Barber, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

func (r *Repository) getOne(ctx context.Context, pred interface{}) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID,
		&barber.UserID,
		&barber.FullName,
		&barber.Phone,
		&barber.ManualLocation,
		&barber.HaircutDurationMinutes,
		&barber.OpenTime,
		&barber.CloseTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan barber: %v", ErrScanRow, err)
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return &barber, nil
}

// List получает список барберов с фильтрацией по имени и локации
// Поиск регистронезависимый, по подстроке
func (r *Repository) List(ctx context.Context, filter domain.BarberFilter) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(barberColumns...).
		From("barbers").
		OrderBy("full_name ASC, id ASC")

	if filter.Search != nil && *filter.Search != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"full_name": "%" + *filter.Search + "%"})
	}
	if filter.Location != nil && *filter.Location != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"manual_location": "%" + *filter.Location + "%"})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var barber domain.Barber
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&barber.ID,
			&barber.UserID,
			&barber.FullName,
			&barber.Phone,
			&barber.ManualLocation,
			&barber.HaircutDurationMinutes,
			&barber.OpenTime,
			&barber.CloseTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		barber.CreatedAt = createdAt.Time
		barber.UpdatedAt = updatedAt.Time

		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// UpdateSchedule обновляет расписание барбера
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, haircutDurationMinutes int, openTime, closeTime string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("haircut_duration_minutes", haircutDurationMinutes).
		Set("open_time", openTime).
		Set("close_time", closeTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBarberNotFound
	}

	return nil
}

// isUniqueViolation проверяет, что это нарушение уникального ограничения
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
