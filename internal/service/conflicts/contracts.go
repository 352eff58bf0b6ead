package conflicts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	// ListActive получает все активные (не отменённые) бронирования,
	// соответствующие селектору ресурса, в интервале [from, to)
	ListActive(ctx context.Context, selector domain.ResourceSelector, from, to time.Time) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс хранилища расписаний
type ScheduleRepository interface {
	// ListDateOverrides получает записи расписания мастера на конкретную дату
	ListDateOverrides(ctx context.Context, masterID int64, date time.Time) ([]*domain.DateSchedule, error)

	// ListRecurringRules получает правила еженедельного расписания мастера
	// на день недели (ISO, 1-7)
	ListRecurringRules(ctx context.Context, masterID int64, weekday int) ([]*domain.RecurringRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
