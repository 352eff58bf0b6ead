package get_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	salonClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
)

// UseCase use case получения доступных слотов мастера на дату
type UseCase struct {
	availability AvailabilityService
	catalog      SalonServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	catalog SalonServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Пустой список слотов - валидный результат (выходной или всё занято).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlots: master=%d, date=%s, duration=%d",
		req.MasterID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование мастера
	if _, err := uc.catalog.GetMaster(ctx, req.MasterID); err != nil {
		if errors.Is(err, salonClient.ErrMasterNotFound) {
			uc.logger.Warn("GetSlots: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("GetSlots: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 3. Определяем рабочий контекст: личный календарь или салон/филиал
	wctx := domain.PersonalContext()
	if req.SalonID != nil {
		salon, err := uc.catalog.GetSalon(ctx, *req.SalonID)
		if err != nil {
			if errors.Is(err, salonClient.ErrSalonNotFound) {
				uc.logger.Warn("GetSlots: salon id=%d not found", *req.SalonID)
				return nil, ErrSalonNotFound
			}
			uc.logger.Error("GetSlots: failed to get salon id=%d: %v", *req.SalonID, err)
			return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
		}

		if req.BranchID != nil && !salon.HasBranch(*req.BranchID) {
			uc.logger.Warn("GetSlots: branch id=%d not found in salon id=%d", *req.BranchID, *req.SalonID)
			return nil, ErrBranchNotFound
		}

		wctx = domain.SalonContext(*req.SalonID, req.BranchID)
	}

	// 4. Подбираем слоты
	slots, err := uc.availability.QuerySlots(ctx, req.MasterID, wctx, req.Date, req.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetSlots: failed to query slots for master=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to query slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetSlots: found %d slots for master=%d on %s",
		len(slots), req.MasterID, req.Date.Format(domain.DateFormat))

	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{Start: s.Start, End: s.End}
	}

	return &Response{
		MasterID: req.MasterID,
		Date:     req.Date,
		Slots:    result,
	}, nil
}
