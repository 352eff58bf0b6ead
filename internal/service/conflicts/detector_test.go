package conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings     []*domain.Booking
	lastSelector domain.ResourceSelector
}

func (f *fakeBookingRepo) ListActive(ctx context.Context, selector domain.ResourceSelector, from, to time.Time) ([]*domain.Booking, error) {
	f.lastSelector = selector
	return f.bookings, nil
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
}

func booking(id int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		ClientID:  100,
		MasterID:  ptr.Ptr(int64(1)),
		ServiceID: 10,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestDetector_HasConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("пересечение с активным бронированием", func(t *testing.T) {
		repo := &fakeBookingRepo{
			bookings: []*domain.Booking{booking(1, at(10, 0), at(11, 0), domain.StatusCreated)},
		}
		d := NewDetector(repo, nopLogger{})

		conflict, err := d.HasConflict(ctx, domain.MasterSelector(1), at(10, 30), at(11, 30), nil)
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("интервалы встык не конфликтуют", func(t *testing.T) {
		repo := &fakeBookingRepo{
			bookings: []*domain.Booking{booking(1, at(10, 0), at(11, 0), domain.StatusCreated)},
		}
		d := NewDetector(repo, nopLogger{})

		conflict, err := d.HasConflict(ctx, domain.MasterSelector(1), at(11, 0), at(12, 0), nil)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("отменённое бронирование не конфликтует", func(t *testing.T) {
		repo := &fakeBookingRepo{
			bookings: []*domain.Booking{booking(1, at(10, 0), at(11, 0), domain.StatusCancelled)},
		}
		d := NewDetector(repo, nopLogger{})

		conflict, err := d.HasConflict(ctx, domain.MasterSelector(1), at(10, 0), at(11, 0), nil)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("исключённое бронирование пропускается", func(t *testing.T) {
		repo := &fakeBookingRepo{
			bookings: []*domain.Booking{booking(42, at(10, 0), at(11, 0), domain.StatusCreated)},
		}
		d := NewDetector(repo, nopLogger{})

		conflict, err := d.HasConflict(ctx, domain.MasterSelector(1), at(10, 0), at(11, 0), ptr.Ptr(int64(42)))
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("некорректный интервал", func(t *testing.T) {
		d := NewDetector(&fakeBookingRepo{}, nopLogger{})

		_, err := d.HasConflict(ctx, domain.MasterSelector(1), at(11, 0), at(10, 0), nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("селектор передаётся в хранилище как есть", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		d := NewDetector(repo, nopLogger{})

		selector := domain.SalonSelector(5, []int64{1, 2, 3})
		_, err := d.HasConflict(ctx, selector, at(10, 0), at(11, 0), nil)
		require.NoError(t, err)
		assert.Equal(t, selector, repo.lastSelector)
	})
}

func TestAgainstBookings(t *testing.T) {
	active := booking(1, at(10, 0), at(11, 0), domain.StatusCreated)
	cancelled := booking(2, at(12, 0), at(13, 0), domain.StatusPaymentExpired)
	bookings := []*domain.Booking{active, cancelled}

	assert.True(t, AgainstBookings(bookings, at(10, 30), at(11, 30), nil))
	assert.False(t, AgainstBookings(bookings, at(12, 0), at(13, 0), nil))
	assert.False(t, AgainstBookings(bookings, at(10, 30), at(11, 30), ptr.Ptr(int64(1))))
	assert.False(t, AgainstBookings(nil, at(10, 0), at(11, 0), nil))
}
