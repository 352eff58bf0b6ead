package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Detector проверяет кандидатные интервалы на пересечение с существующими
// бронированиями. Чистое чтение, без побочных эффектов.
type Detector struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewDetector создает новый детектор конфликтов
func NewDetector(bookingRepo BookingRepository, logger Logger) *Detector {
	return &Detector{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// HasConflict проверяет, свободен ли интервал [start, end) для ресурса.
// excludeBookingID исключает одно бронирование из проверки - используется
// при повторной проверке редактируемого бронирования.
//
// Для KindSalon репозиторий проверяет и записи на сам салон, и записи каждого
// аффилированного мастера: салонное и персональное бронирование на пересекающееся
// время взаимоисключающие.
func (d *Detector) HasConflict(ctx context.Context, selector domain.ResourceSelector, start, end time.Time, excludeBookingID *int64) (bool, error) {
	if !start.Before(end) {
		return false, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, start, end)
	}

	// Достаточно бронирований, пересекающихся с сутками кандидата
	dayStart := truncateToDay(start)
	dayEnd := truncateToDay(end).AddDate(0, 0, 1)

	bookings, err := d.bookingRepo.ListActive(ctx, selector, dayStart, dayEnd)
	if err != nil {
		return false, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	return AgainstBookings(bookings, start, end, excludeBookingID), nil
}

// AgainstBookings проверяет пересечение интервала [start, end) с любым из
// переданных бронирований. Отменённые бронирования пропускаются.
// Чистая функция: используется и детектором, и выборкой слотов, где
// бронирования на день загружаются один раз.
func AgainstBookings(bookings []*domain.Booking, start, end time.Time, excludeBookingID *int64) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		if types.Overlaps(booking.StartTime, booking.EndTime, start, end) {
			return true
		}
	}
	return false
}

// truncateToDay обнуляет время, оставляя только дату (в UTC)
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
