package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс хранилища расписаний мастеров
type ScheduleRepository interface {
	// ListDateOverrides получает записи расписания мастера на конкретную дату
	// (все контексты: личные и салонные)
	ListDateOverrides(ctx context.Context, masterID int64, date time.Time) ([]*domain.DateSchedule, error)

	// ListRecurringRules получает правила еженедельного расписания мастера
	// на день недели (ISO, 1-7)
	ListRecurringRules(ctx context.Context, masterID int64, weekday int) ([]*domain.RecurringRule, error)
}

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	// ListActive получает активные бронирования по селектору ресурса в [from, to)
	ListActive(ctx context.Context, selector domain.ResourceSelector, from, to time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
