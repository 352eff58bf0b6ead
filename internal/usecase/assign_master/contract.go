package assign_master

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
)

// ConflictDetector интерфейс детектора конфликтов
type ConflictDetector interface {
	HasConflict(ctx context.Context, selector domain.ResourceSelector, start, end time.Time, excludeBookingID *int64) (bool, error)
}

// CommitmentValidator интерфейс проверки, что мастер работает на всём интервале
type CommitmentValidator interface {
	IsWorking(ctx context.Context, masterID int64, start, end time.Time, wctx domain.WorkContext) (bool, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
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
