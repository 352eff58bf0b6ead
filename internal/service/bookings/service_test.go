package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	booking         *domain.Booking
	cancelledStatus *domain.BookingStatus
	cancelledReason string
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeRepo) GetByClientID(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeRepo) GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	f.cancelledStatus = &status
	f.cancelledReason = reason
	return nil
}

type fakeCatalog struct {
	salon *salonservice.Salon
}

func (f *fakeCatalog) GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error) {
	if f.salon == nil {
		return nil, salonservice.ErrSalonNotFound
	}
	return f.salon, nil
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:        1,
		ClientID:  100,
		MasterID:  ptr.Ptr(int64(1)),
		SalonID:   ptr.Ptr(int64(5)),
		ServiceID: 10,
		StartTime: time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 16, 11, 0, 0, 0, time.UTC),
		Status:    domain.StatusCreated,
	}
}

func managedSalon() *salonservice.Salon {
	return &salonservice.Salon{ID: 5, ManagerIDs: []int64{200}}
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("владелец видит своё бронирование", func(t *testing.T) {
		svc := NewService(&fakeRepo{booking: testBooking()}, &fakeCatalog{salon: managedSalon()}, nopLogger{})

		resp, err := svc.GetByID(ctx, 1, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("менеджер салона видит бронирование салона", func(t *testing.T) {
		svc := NewService(&fakeRepo{booking: testBooking()}, &fakeCatalog{salon: managedSalon()}, nopLogger{})

		resp, err := svc.GetByID(ctx, 1, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("чужой пользователь получает отказ", func(t *testing.T) {
		svc := NewService(&fakeRepo{booking: testBooking()}, &fakeCatalog{salon: managedSalon()}, nopLogger{})

		_, err := svc.GetByID(ctx, 1, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("бронирование не найдено", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeCatalog{}, nopLogger{})

		_, err := svc.GetByID(ctx, 1, 100)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("владелец отменяет со статусом cancelled_by_client", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking()}
		svc := NewService(repo, &fakeCatalog{salon: managedSalon()}, nopLogger{})

		err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{UserID: 100, Reason: "передумал"})
		require.NoError(t, err)
		require.NotNil(t, repo.cancelledStatus)
		assert.Equal(t, domain.StatusCancelledByClient, *repo.cancelledStatus)
		assert.Equal(t, "передумал", repo.cancelledReason)
	})

	t.Run("менеджер отменяет со статусом cancelled_by_salon", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking()}
		svc := NewService(repo, &fakeCatalog{salon: managedSalon()}, nopLogger{})

		err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{UserID: 200})
		require.NoError(t, err)
		require.NotNil(t, repo.cancelledStatus)
		assert.Equal(t, domain.StatusCancelledBySalon, *repo.cancelledStatus)
	})

	t.Run("завершённое бронирование нельзя отменить", func(t *testing.T) {
		b := testBooking()
		b.Status = domain.StatusCompleted
		svc := NewService(&fakeRepo{booking: b}, &fakeCatalog{salon: managedSalon()}, nopLogger{})

		err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{UserID: 100})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("посторонний пользователь не может отменить", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking()}
		svc := NewService(repo, &fakeCatalog{salon: managedSalon()}, nopLogger{})

		err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{UserID: 999})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, repo.cancelledStatus)
	})
}
