package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Репозиторий расписаний: сервис только читает декларации доступности,
// их редактирование принадлежит сервису управления мастерами.

// Repository репозиторий для чтения расписаний мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListDateOverrides получает все записи расписания мастера на конкретную дату
// (личные и салонные), отсортированные по времени начала
func (r *Repository) ListDateOverrides(ctx context.Context, masterID int64, date time.Time) ([]*domain.DateSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select(
		"id",
		"master_id",
		"salon_id",
		"branch_id",
		"date",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("date_schedules").
		Where(squirrel.Eq{"master_id": masterID}).
		Where(squirrel.Eq{"date": day}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDateOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.DateSchedule, 0)
	for rows.Next() {
		var s domain.DateSchedule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.MasterID,
			&s.SalonID,
			&s.BranchID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDateOverrides - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDateOverrides - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// ListRecurringRules получает правила еженедельного расписания мастера
// на день недели (ISO, 1-7), отсортированные по времени начала
func (r *Repository) ListRecurringRules(ctx context.Context, masterID int64, weekday int) ([]*domain.RecurringRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"master_id",
		"weekday",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("recurring_rules").
		Where(squirrel.Eq{"master_id": masterID}).
		Where(squirrel.Eq{"weekday": weekday}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecurringRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecurringRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.RecurringRule, 0)
	for rows.Next() {
		var rule domain.RecurringRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.MasterID,
			&rule.Weekday,
			&rule.StartTime,
			&rule.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRecurringRules - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecurringRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
