package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	active  []*domain.Booking
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

// ListActive воспроизводит контракт хранилища: отдаются бронирования,
// пересекающие [from, to), а не только начавшиеся внутри интервала
func (f *fakeBookingRepo) ListActive(ctx context.Context, selector domain.ResourceSelector, from, to time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.active {
		if b.StartTime.Before(to) && b.EndTime.After(from) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeCommitment struct {
	working bool
}

func (f *fakeCommitment) IsWorking(ctx context.Context, masterID int64, start, end time.Time, wctx domain.WorkContext) (bool, error) {
	return f.working, nil
}

type fakeCatalog struct {
	master  *salonservice.Master
	salon   *salonservice.Salon
	masters []salonservice.Master
}

func (f *fakeCatalog) GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error) {
	if f.salon == nil {
		return nil, salonservice.ErrSalonNotFound
	}
	return f.salon, nil
}

func (f *fakeCatalog) GetMaster(ctx context.Context, masterID int64) (*salonservice.Master, error) {
	if f.master == nil {
		return nil, salonservice.ErrMasterNotFound
	}
	return f.master, nil
}

func (f *fakeCatalog) GetService(ctx context.Context, serviceID int64) (*salonservice.Service, error) {
	return &salonservice.Service{ID: serviceID, Name: "Стрижка", Price: ptr.Ptr(1500.0)}, nil
}

func (f *fakeCatalog) ListMasters(ctx context.Context, salonID int64) ([]salonservice.Master, error) {
	return f.masters, nil
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

var testNow = time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return time.Date(2025, 6, 16, hour, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeBookingRepo, commitment *fakeCommitment, catalog *fakeCatalog, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(repo, commitment, catalog, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func masterRequest() *Request {
	return &Request{
		ClientID:  100,
		MasterID:  ptr.Ptr(int64(1)),
		ServiceID: 10,
		Start:     at(10),
		End:       at(11),
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное создание бронирования к мастеру", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		tx := &fakeTxManager{}
		uc := newTestUseCase(repo, &fakeCommitment{working: true},
			&fakeCatalog{master: &salonservice.Master{ID: 1}}, tx)

		resp, err := uc.Execute(ctx, masterRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, string(domain.StatusCreated), resp.Status)
		assert.Equal(t, "Стрижка", resp.ServiceName)
		assert.Equal(t, 1500.0, resp.ServicePrice)

		// Проверка конфликтов и вставка - внутри одной транзакции
		assert.Equal(t, 1, tx.calls)
		require.NotNil(t, repo.created)
		assert.Equal(t, domain.StatusCreated, repo.created.Status)
	})

	t.Run("пересечение с активным бронированием", func(t *testing.T) {
		repo := &fakeBookingRepo{
			active: []*domain.Booking{{
				ID:        7,
				MasterID:  ptr.Ptr(int64(1)),
				StartTime: at(10),
				EndTime:   at(11),
				Status:    domain.StatusCreated,
			}},
		}
		uc := newTestUseCase(repo, &fakeCommitment{working: true},
			&fakeCatalog{master: &salonservice.Master{ID: 1}}, &fakeTxManager{})

		_, err := uc.Execute(ctx, masterRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, repo.created)
	})

	t.Run("пересечение с бронированием, начавшимся раньше интервала", func(t *testing.T) {
		// Бронирование 10:00-11:00 начинается до запрошенного интервала
		// 10:30-11:30, но пересекает его - создание должно быть отклонено
		repo := &fakeBookingRepo{
			active: []*domain.Booking{{
				ID:        8,
				MasterID:  ptr.Ptr(int64(1)),
				StartTime: at(10),
				EndTime:   at(11),
				Status:    domain.StatusCreated,
			}},
		}
		uc := newTestUseCase(repo, &fakeCommitment{working: true},
			&fakeCatalog{master: &salonservice.Master{ID: 1}}, &fakeTxManager{})

		req := masterRequest()
		req.Start = at(10).Add(30 * time.Minute)
		req.End = at(11).Add(30 * time.Minute)
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, repo.created)
	})

	t.Run("мастер не работает в это время", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCommitment{working: false},
			&fakeCatalog{master: &salonservice.Master{ID: 1}}, &fakeTxManager{})

		_, err := uc.Execute(ctx, masterRequest())
		assert.ErrorIs(t, err, ErrMasterNotWorking)
	})

	t.Run("мастер не принадлежит салону", func(t *testing.T) {
		otherSalon := int64(99)
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCommitment{working: true},
			&fakeCatalog{
				master: &salonservice.Master{ID: 1, SalonID: &otherSalon},
				salon:  &salonservice.Salon{ID: 5},
			}, &fakeTxManager{})

		req := masterRequest()
		req.SalonID = ptr.Ptr(int64(5))
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrMasterNotInSalon)
	})

	t.Run("бронирование в прошлом", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCommitment{working: true},
			&fakeCatalog{master: &salonservice.Master{ID: 1}}, &fakeTxManager{})

		req := masterRequest()
		req.Start = testNow.Add(-2 * time.Hour)
		req.End = testNow.Add(-1 * time.Hour)
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrBookingInPast)
	})

	t.Run("нужен мастер или салон", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCommitment{working: true},
			&fakeCatalog{}, &fakeTxManager{})

		req := masterRequest()
		req.MasterID = nil
		req.SalonID = nil
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("салонное бронирование без мастера", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, &fakeCommitment{working: true},
			&fakeCatalog{
				salon:   &salonservice.Salon{ID: 5},
				masters: []salonservice.Master{{ID: 1}, {ID: 2}},
			}, &fakeTxManager{})

		req := masterRequest()
		req.MasterID = nil
		req.SalonID = ptr.Ptr(int64(5))

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Nil(t, resp.MasterID)
		require.NotNil(t, resp.SalonID)
		assert.Equal(t, int64(5), *resp.SalonID)
	})
}
