package providersettings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий настроек доступности провайдера
// Недельное расписание хранится JSONB документом и валидируется при
// сканировании (domain.WeeklySchedule.Scan) - невалидное расписание
// не попадает в генератор слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID получает настройки провайдера
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"provider_id",
		"timezone",
		"weekly_schedule",
		"slot_step_minutes",
		"buffer_minutes",
		"min_notice_hours",
		"advance_booking_days",
		"created_at",
		"updated_at",
	).
		From("provider_settings").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.ProviderSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ProviderID,
		&settings.Timezone,
		&settings.Schedule,
		&settings.SlotStepMinutes,
		&settings.BufferMinutes,
		&settings.MinNoticeHours,
		&settings.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Upsert создает или обновляет настройки провайдера
func (r *Repository) Upsert(ctx context.Context, settings *domain.ProviderSettings) (*domain.ProviderSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_settings").
		Columns(
			"provider_id",
			"timezone",
			"weekly_schedule",
			"slot_step_minutes",
			"buffer_minutes",
			"min_notice_hours",
			"advance_booking_days",
		).
		Values(
			settings.ProviderID,
			settings.Timezone,
			settings.Schedule,
			settings.SlotStepMinutes,
			settings.BufferMinutes,
			settings.MinNoticeHours,
			settings.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			weekly_schedule = EXCLUDED.weekly_schedule,
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			buffer_minutes = EXCLUDED.buffer_minutes,
			min_notice_hours = EXCLUDED.min_notice_hours,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}
