package get_group_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	salonClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
)

// UseCase use case получения слотов салона: объединение слотов всех мастеров,
// оказывающих услугу, с балансировкой нагрузки при совпадении времён
type UseCase struct {
	availability AvailabilityService
	bookingRepo  BookingRepository
	catalog      SalonServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	bookingRepo BookingRepository,
	catalog SalonServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов салона.
// Результат - объединение слотов мастеров, без идентичности мастера.
// Пустой список - валидный результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetGroupSlots: salon=%d, service=%d, date=%s, duration=%d",
		req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetGroupSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем салон и филиал
	salon, err := uc.catalog.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("GetGroupSlots: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetGroupSlots: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if req.BranchID != nil && !salon.HasBranch(*req.BranchID) {
		uc.logger.Warn("GetGroupSlots: branch id=%d not found in salon id=%d", *req.BranchID, req.SalonID)
		return nil, ErrBranchNotFound
	}

	// 3. Проверяем услугу
	if _, err := uc.catalog.GetService(ctx, req.ServiceID); err != nil {
		if errors.Is(err, salonClient.ErrServiceNotFound) {
			uc.logger.Warn("GetGroupSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetGroupSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Мастера салона, оказывающие услугу (с учётом филиала)
	masters, err := uc.catalog.ListMastersOfferingService(ctx, req.SalonID, req.ServiceID, req.BranchID)
	if err != nil {
		uc.logger.Error("GetGroupSlots: failed to list masters for salon=%d, service=%d: %v",
			req.SalonID, req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to list masters: %v", ErrInternal, err)
	}

	// 5. Собираем слоты каждого мастера вместе с его дневной нагрузкой
	wctx := domain.SalonContext(req.SalonID, req.BranchID)
	members := make([]memberSlots, 0, len(masters))

	for _, master := range masters {
		slots, err := uc.availability.QuerySlots(ctx, master.ID, wctx, req.Date, req.DurationMinutes)
		if err != nil {
			uc.logger.Error("GetGroupSlots: failed to query slots for master=%d: %v", master.ID, err)
			return nil, fmt.Errorf("%w: failed to query slots: %v", ErrInternal, err)
		}
		if len(slots) == 0 {
			continue
		}

		load, err := uc.bookingRepo.CountActiveByMasterOnDate(ctx, master.ID, req.Date)
		if err != nil {
			uc.logger.Error("GetGroupSlots: failed to count bookings for master=%d: %v", master.ID, err)
			return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		members = append(members, memberSlots{
			masterID: master.ID,
			load:     load,
			slots:    slots,
		})
	}

	// 6. Объединяем с дедупликацией по времени начала
	merged := mergeGroupSlots(members)

	uc.logger.Info("GetGroupSlots: %d slots from %d masters for salon=%d, service=%d, date=%s",
		len(merged), len(members), req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	result := make([]Slot, len(merged))
	for i, s := range merged {
		result[i] = Slot{Start: s.Start, End: s.End}
	}

	return &Response{
		SalonID:   req.SalonID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     result,
	}, nil
}
