package get_group_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
)

// AvailabilityService интерфейс сервиса подбора слотов
type AvailabilityService interface {
	QuerySlots(ctx context.Context, masterID int64, wctx domain.WorkContext, date time.Time, durationMinutes int) ([]domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountActiveByMasterOnDate подсчитывает активные бронирования мастера за дату,
	// используется для балансировки нагрузки между мастерами
	CountActiveByMasterOnDate(ctx context.Context, masterID int64, date time.Time) (int, error)
}

// SalonServiceClient интерфейс клиента каталога
type SalonServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error)
	GetService(ctx context.Context, serviceID int64) (*salonservice.Service, error)
	ListMastersOfferingService(ctx context.Context, salonID, serviceID int64, branchID *int64) ([]salonservice.Master, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
