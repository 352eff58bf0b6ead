package assign_master

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
)

// Usecase подбор наименее загруженного мастера под запрошенный интервал
type Usecase struct {
	conflicts   ConflictDetector
	commitment  CommitmentValidator
	bookingRepo BookingRepository
	salonClient SalonServiceClient
	log         Logger
}

func New(
	conflicts ConflictDetector,
	commitment CommitmentValidator,
	bookingRepo BookingRepository,
	salonClient SalonServiceClient,
	log Logger,
) *Usecase {
	return &Usecase{
		conflicts:   conflicts,
		commitment:  commitment,
		bookingRepo: bookingRepo,
		salonClient: salonClient,
		log:         log,
	}
}

// Execute подбирает мастера салона, свободного на весь интервал [start, end).
// Среди подходящих выбирается мастер с наименьшим числом активных записей
// на дату интервала; при равенстве - мастер с меньшим ID.
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Проверяем существование салона
	salon, err := u.salonClient.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonservice.ErrSalonNotFound) {
			return nil, fmt.Errorf("%w: salonID=%d", ErrSalonNotFound, req.SalonID)
		}
		u.log.Error("assign_master.Execute - failed to get salon %d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: Execute - get salon: %v", ErrInternal, err)
	}

	// 3. Проверяем филиал, если указан
	if req.BranchID != nil && !salon.HasBranch(*req.BranchID) {
		return nil, fmt.Errorf("%w: branchID=%d in salonID=%d", ErrBranchNotFound, *req.BranchID, req.SalonID)
	}

	// 4. Проверяем существование услуги
	if _, err := u.salonClient.GetService(ctx, req.ServiceID); err != nil {
		if errors.Is(err, salonservice.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: serviceID=%d", ErrServiceNotFound, req.ServiceID)
		}
		u.log.Error("assign_master.Execute - failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Execute - get service: %v", ErrInternal, err)
	}

	// 5. Получаем мастеров салона, оказывающих услугу
	masters, err := u.salonClient.ListMastersOfferingService(ctx, req.SalonID, req.ServiceID, req.BranchID)
	if err != nil {
		u.log.Error("assign_master.Execute - failed to list masters for salon %d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: Execute - list masters: %v", ErrInternal, err)
	}

	wctx := domain.SalonContext(req.SalonID, req.BranchID)

	// 6. Отбираем мастеров, работающих и свободных на всём интервале
	best := &Response{Found: false}
	bestLoad := 0
	for _, master := range masters {
		working, err := u.commitment.IsWorking(ctx, master.ID, req.Start, req.End, wctx)
		if err != nil {
			u.log.Error("assign_master.Execute - commitment check failed for master %d: %v", master.ID, err)
			return nil, fmt.Errorf("%w: Execute - commitment check: %v", ErrInternal, err)
		}
		if !working {
			continue
		}

		selector := domain.MasterInSalonSelector(master.ID, req.SalonID)
		hasConflict, err := u.conflicts.HasConflict(ctx, selector, req.Start, req.End, nil)
		if err != nil {
			u.log.Error("assign_master.Execute - conflict check failed for master %d: %v", master.ID, err)
			return nil, fmt.Errorf("%w: Execute - conflict check: %v", ErrInternal, err)
		}
		if hasConflict {
			continue
		}

		// 7. Считаем загрузку мастера на дату интервала
		load, err := u.bookingRepo.CountActiveByMasterOnDate(ctx, master.ID, req.Start)
		if err != nil {
			u.log.Error("assign_master.Execute - failed to count bookings for master %d: %v", master.ID, err)
			return nil, fmt.Errorf("%w: Execute - count bookings: %v", ErrInternal, err)
		}

		if !best.Found || load < bestLoad || (load == bestLoad && master.ID < best.MasterID) {
			best = &Response{Found: true, MasterID: master.ID}
			bestLoad = load
		}
	}

	if !best.Found {
		u.log.Info("assign_master.Execute - no available master in salon %d for interval %s - %s",
			req.SalonID, req.Start.Format(domain.TimeFormat), req.End.Format(domain.TimeFormat))
	}

	return best, nil
}
