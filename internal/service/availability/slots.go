package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/conflicts"
)

// Service вычисляет список доступных для записи слотов:
// resolver рабочих окон + сетка кандидатов + проверка конфликтов.
type Service struct {
	resolver    *Resolver
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый сервис подбора слотов
func NewService(resolver *Resolver, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		resolver:    resolver,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// QuerySlots возвращает упорядоченный список бронируемых интервалов длительности
// durationMinutes для мастера на дату в заданном рабочем контексте.
//
// Услуга обязана целиком помещаться в одно непрерывное рабочее окно:
// кандидат, чей конец выходит за границу окна, отбрасывается, даже если
// следующее окно могло бы его "продолжить" через разрыв.
//
// Пустой результат - валидный ответ (выходной день или всё занято), не ошибка.
func (s *Service) QuerySlots(ctx context.Context, masterID int64, wctx domain.WorkContext, date time.Time, durationMinutes int) ([]domain.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, durationMinutes)
	}

	windows, err := s.resolver.Resolve(ctx, masterID, date, wctx)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []domain.Slot{}, nil
	}

	selector := selectorFor(masterID, wctx)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	bookings, err := s.bookingRepo.ListActive(ctx, selector, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	// Одно и то же время начала может быть достижимо из нескольких окон -
	// дедуплицируем по точному времени начала
	seen := make(map[int64]struct{})
	slots := make([]domain.Slot, 0)

	for _, window := range windows {
		candidates, err := GenerateGrid(window.Start, window.End)
		if err != nil {
			return nil, err
		}

		for _, candidate := range candidates {
			slotEnd, err := candidate.AddMinutes(durationMinutes)
			if err != nil {
				// Конец слота за границей суток
				continue
			}
			// Услуга должна помещаться внутри окна целиком
			if window.End.IsBefore(slotEnd) {
				continue
			}

			startTS, err := candidate.OnDate(date)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInternal, err)
			}
			endTS, err := slotEnd.OnDate(date)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInternal, err)
			}

			if conflicts.AgainstBookings(bookings, startTS, endTS, nil) {
				continue
			}

			key := startTS.Unix()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			slots = append(slots, domain.Slot{Start: startTS, End: endTS})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots, nil
}

// Windows возвращает разрешённые рабочие окна мастера на дату без учёта
// бронирований. Используется для просмотра расписания как такового.
func (s *Service) Windows(ctx context.Context, masterID int64, date time.Time, wctx domain.WorkContext) ([]domain.Window, error) {
	return s.resolver.Resolve(ctx, masterID, date, wctx)
}

// selectorFor строит селектор ресурса для проверки конфликтов по рабочему контексту
func selectorFor(masterID int64, wctx domain.WorkContext) domain.ResourceSelector {
	if wctx.SalonID != nil {
		return domain.MasterInSalonSelector(masterID, *wctx.SalonID)
	}
	return domain.MasterSelector(masterID)
}
