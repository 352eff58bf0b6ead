package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/conflicts"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	commitment   CommitmentValidator
	salonClient  SalonServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	commitment CommitmentValidator,
	salonClient SalonServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		commitment:   commitment,
		salonClient:  salonClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции:
// конкурентное создание на пересекающийся интервал не пройдёт мимо проверки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, service=%d, interval=%s - %s",
		req.ClientID, req.ServiceID,
		req.Start.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.End.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now().UTC()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу для денормализации
	service, err := uc.salonClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, salonservice.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Проверяем мастера, если указан
	if req.MasterID != nil {
		master, err := uc.salonClient.GetMaster(ctx, *req.MasterID)
		if err != nil {
			if errors.Is(err, salonservice.ErrMasterNotFound) {
				uc.logger.Warn("CreateBooking: master id=%d not found", *req.MasterID)
				return nil, ErrMasterNotFound
			}
			uc.logger.Error("CreateBooking: failed to get master id=%d: %v", *req.MasterID, err)
			return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
		}

		if req.SalonID != nil && (master.SalonID == nil || *master.SalonID != *req.SalonID) {
			uc.logger.Warn("CreateBooking: master id=%d does not belong to salon id=%d",
				*req.MasterID, *req.SalonID)
			return nil, ErrMasterNotInSalon
		}
	}

	// 4. Проверяем салон и филиал, если указаны
	var salonMembers []int64
	if req.SalonID != nil {
		salon, err := uc.salonClient.GetSalon(ctx, *req.SalonID)
		if err != nil {
			if errors.Is(err, salonservice.ErrSalonNotFound) {
				uc.logger.Warn("CreateBooking: salon id=%d not found", *req.SalonID)
				return nil, ErrSalonNotFound
			}
			uc.logger.Error("CreateBooking: failed to get salon id=%d: %v", *req.SalonID, err)
			return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
		}

		if req.BranchID != nil && !salon.HasBranch(*req.BranchID) {
			uc.logger.Warn("CreateBooking: branch id=%d not found in salon id=%d",
				*req.BranchID, *req.SalonID)
			return nil, ErrBranchNotFound
		}

		// Для салонного бронирования без мастера конфликт проверяется
		// по салону и по всем его мастерам.
		if req.MasterID == nil {
			masters, err := uc.salonClient.ListMasters(ctx, *req.SalonID)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to list masters of salon id=%d: %v", *req.SalonID, err)
				return nil, fmt.Errorf("%w: failed to list salon masters: %v", ErrInternal, err)
			}
			salonMembers = make([]int64, 0, len(masters))
			for _, m := range masters {
				salonMembers = append(salonMembers, m.ID)
			}
		}
	}

	// 5. Проверяем, что мастер работает на всём интервале
	if req.MasterID != nil {
		wctx := domain.PersonalContext()
		if req.SalonID != nil {
			wctx = domain.SalonContext(*req.SalonID, req.BranchID)
		}

		working, err := uc.commitment.IsWorking(ctx, *req.MasterID, req.Start, req.End, wctx)
		if err != nil {
			uc.logger.Error("CreateBooking: commitment check failed for master id=%d: %v", *req.MasterID, err)
			return nil, fmt.Errorf("%w: commitment check: %v", ErrInternal, err)
		}
		if !working {
			uc.logger.Warn("CreateBooking: master id=%d is not working at %s - %s",
				*req.MasterID, req.Start.Format(domain.TimeFormat), req.End.Format(domain.TimeFormat))
			return nil, ErrMasterNotWorking
		}
	}

	selector := resourceSelector(req, salonMembers)

	// 6. Выполняем проверку конфликтов и вставку в сериализуемой транзакции
	var result *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активные бронирования на интервал с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListActive(txCtx, selector, req.Start, req.End)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем пересечения
		if conflicts.AgainstBookings(bookings, req.Start, req.End, nil) {
			uc.logger.Warn("CreateBooking: slot %s - %s is already taken",
				req.Start.Format(domain.TimeFormat), req.End.Format(domain.TimeFormat))
			return ErrSlotNotAvailable
		}

		// 6.3. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			ClientID:     req.ClientID,
			MasterID:     req.MasterID,
			SalonID:      req.SalonID,
			BranchID:     req.BranchID,
			ServiceID:    req.ServiceID,
			StartTime:    req.Start.UTC(),
			EndTime:      req.End.UTC(),
			Status:       domain.StatusCreated,
			ServiceName:  service.Name,
			ServicePrice: servicePrice(service),
			Comment:      req.Comment,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for client=%d", result.ID, result.ClientID)

	return &Response{
		ID:           result.ID,
		ClientID:     result.ClientID,
		MasterID:     result.MasterID,
		SalonID:      result.SalonID,
		BranchID:     result.BranchID,
		ServiceID:    result.ServiceID,
		Start:        result.StartTime,
		End:          result.EndTime,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		Comment:      result.Comment,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// resourceSelector строит селектор ресурса по комбинации MasterID / SalonID
func resourceSelector(req *Request, salonMembers []int64) domain.ResourceSelector {
	switch {
	case req.MasterID != nil && req.SalonID != nil:
		return domain.MasterInSalonSelector(*req.MasterID, *req.SalonID)
	case req.MasterID != nil:
		return domain.MasterSelector(*req.MasterID)
	default:
		return domain.SalonSelector(*req.SalonID, salonMembers)
	}
}

func servicePrice(service *salonservice.Service) float64 {
	if service.Price == nil {
		return 0
	}
	return *service.Price
}
