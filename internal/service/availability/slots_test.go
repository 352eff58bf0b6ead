package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListActive(ctx context.Context, selector domain.ResourceSelector, from, to time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func booking(start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        1,
		ClientID:  100,
		MasterID:  ptr.Ptr(int64(1)),
		ServiceID: 10,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
}

func newTestService(schedule *fakeScheduleRepo, bookings *fakeBookingRepo) *Service {
	resolver := NewResolver(schedule, nopLogger{})
	return NewService(resolver, bookings, nopLogger{})
}

func TestService_QuerySlots(t *testing.T) {
	ctx := context.Background()

	t.Run("услуга должна помещаться в одно окно целиком", func(t *testing.T) {
		schedule := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{
				override("09:00", "12:00", true),
				override("14:00", "18:00", true),
			},
		}
		svc := newTestService(schedule, &fakeBookingRepo{})

		slots, err := svc.QuerySlots(ctx, 1, domain.PersonalContext(), testDate, 90)
		require.NoError(t, err)

		starts := make([]time.Time, len(slots))
		for i, s := range slots {
			starts[i] = s.Start
		}

		// Утреннее окно: последний 90-минутный слот начинается в 10:30
		// Вечернее окно: последний - в 16:30. Слот 11:00-12:30 не попадает:
		// через разрыв между окнами услуга не переносится.
		expected := []time.Time{
			at(9, 0), at(9, 30), at(10, 0), at(10, 30),
			at(14, 0), at(14, 30), at(15, 0), at(15, 30), at(16, 0), at(16, 30),
		}
		assert.Equal(t, expected, starts)

		// Конец слота = начало + длительность
		assert.Equal(t, at(10, 30), slots[0].End)
	})

	t.Run("активное бронирование вырезает пересекающиеся слоты", func(t *testing.T) {
		schedule := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("09:00", "12:00", true)},
		}
		bookings := &fakeBookingRepo{
			bookings: []*domain.Booking{booking(at(10, 0), at(10, 30), domain.StatusCreated)},
		}
		svc := newTestService(schedule, bookings)

		slots, err := svc.QuerySlots(ctx, 1, domain.PersonalContext(), testDate, 30)
		require.NoError(t, err)

		starts := make([]time.Time, len(slots))
		for i, s := range slots {
			starts[i] = s.Start
		}

		// 10:00 занят, соседние слоты не задеты
		expected := []time.Time{at(9, 0), at(9, 30), at(10, 30), at(11, 0), at(11, 30)}
		assert.Equal(t, expected, starts)
	})

	t.Run("отменённое бронирование не занимает слот", func(t *testing.T) {
		schedule := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("10:00", "11:00", true)},
		}
		bookings := &fakeBookingRepo{
			bookings: []*domain.Booking{booking(at(10, 0), at(10, 30), domain.StatusCancelledByClient)},
		}
		svc := newTestService(schedule, bookings)

		slots, err := svc.QuerySlots(ctx, 1, domain.PersonalContext(), testDate, 30)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, at(10, 0), slots[0].Start)
	})

	t.Run("выходной день - пустой список, не ошибка", func(t *testing.T) {
		schedule := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("09:00", "18:00", false)},
		}
		svc := newTestService(schedule, &fakeBookingRepo{})

		slots, err := svc.QuerySlots(ctx, 1, domain.PersonalContext(), testDate, 30)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("длительность больше любого окна - пусто", func(t *testing.T) {
		schedule := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("09:00", "10:00", true)},
		}
		svc := newTestService(schedule, &fakeBookingRepo{})

		slots, err := svc.QuerySlots(ctx, 1, domain.PersonalContext(), testDate, 120)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("некорректная длительность", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBookingRepo{})

		_, err := svc.QuerySlots(ctx, 1, domain.PersonalContext(), testDate, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}
