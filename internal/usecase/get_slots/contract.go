package get_slots

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

// SalonServiceClient интерфейс клиента каталога
type SalonServiceClient interface {
	GetMaster(ctx context.Context, masterID int64) (*salonservice.Master, error)
	GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
