package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с доступностью барбера:
// дневные переопределения и заблокированные слоты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertDayOverride создает или обновляет дневное переопределение доступности
// Ключ (barber_id, date); повторный вызов перезаписывает is_available
func (r *Repository) UpsertDayOverride(ctx context.Context, override *domain.DayAvailability) (*domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barber_availability").
		Columns("barber_id", "date", "is_available").
		Values(override.BarberID, override.Date, override.IsAvailable).
		Suffix(`ON CONFLICT (barber_id, date)
			DO UPDATE SET is_available = EXCLUDED.is_available, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDayOverride - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDayOverride - execute upsert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// GetDayOverride получает дневное переопределение для барбера на дату
// При отсутствии записи возвращает ErrDayOverrideNotFound, день считается доступным
func (r *Repository) GetDayOverride(ctx context.Context, barberID int64, date time.Time) (*domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barber_id",
		"date",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("barber_availability").
		Where(squirrel.Eq{"barber_id": barberID, "date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDayOverride - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.DayAvailability
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.BarberID,
		&override.Date,
		&override.IsAvailable,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDayOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayOverride - scan override: %v", ErrScanRow, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// UpsertSlotBlackout создает или обновляет блокировку слота
// Ключ (barber_id, date, start_time); is_unavailable = false снова открывает слот
func (r *Repository) UpsertSlotBlackout(ctx context.Context, blackout *domain.SlotBlackout) (*domain.SlotBlackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("unavailable_time_slots").
		Columns("barber_id", "date", "start_time", "is_unavailable").
		Values(blackout.BarberID, blackout.Date, blackout.StartTime, blackout.IsUnavailable).
		Suffix(`ON CONFLICT (barber_id, date, start_time)
			DO UPDATE SET is_unavailable = EXCLUDED.is_unavailable, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSlotBlackout - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&blackout.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSlotBlackout - execute upsert: %v", ErrExecQuery, err)
	}

	blackout.CreatedAt = createdAt.Time
	blackout.UpdatedAt = updatedAt.Time

	return blackout, nil
}

// ListSlotBlackouts получает все блокировки слотов барбера на дату
func (r *Repository) ListSlotBlackouts(ctx context.Context, barberID int64, date time.Time) ([]*domain.SlotBlackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barber_id",
		"date",
		"start_time",
		"is_unavailable",
		"created_at",
		"updated_at",
	).
		From("unavailable_time_slots").
		Where(squirrel.Eq{"barber_id": barberID, "date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotBlackouts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotBlackouts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.SlotBlackout, 0)
	for rows.Next() {
		var blackout domain.SlotBlackout
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&blackout.ID,
			&blackout.BarberID,
			&blackout.Date,
			&blackout.StartTime,
			&blackout.IsUnavailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSlotBlackouts - scan row: %v", ErrScanRow, err)
		}

		blackout.CreatedAt = createdAt.Time
		blackout.UpdatedAt = updatedAt.Time

		blackouts = append(blackouts, &blackout)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSlotBlackouts - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}
