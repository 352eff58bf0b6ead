package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeScheduleRepo struct {
	overrides []*domain.DateSchedule
	rules     []*domain.RecurringRule
}

func (f *fakeScheduleRepo) ListDateOverrides(ctx context.Context, masterID int64, date time.Time) ([]*domain.DateSchedule, error) {
	return f.overrides, nil
}

func (f *fakeScheduleRepo) ListRecurringRules(ctx context.Context, masterID int64, weekday int) ([]*domain.RecurringRule, error) {
	return f.rules, nil
}

// 2025-06-16 - понедельник
var testDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func override(start, end string, available bool) *domain.DateSchedule {
	return &domain.DateSchedule{
		MasterID:    1,
		Date:        testDate,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsAvailable: available,
	}
}

func rule(start, end string) *domain.RecurringRule {
	return &domain.RecurringRule{
		MasterID:  1,
		Weekday:   1,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("смежные блоки на дату сливаются в одно окно", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{
				override("10:00", "10:30", true),
				override("09:00", "09:30", true),
				override("09:30", "10:00", true),
			},
		}
		r := NewResolver(repo, nopLogger{})

		windows, err := r.Resolve(ctx, 1, testDate, domain.PersonalContext())
		require.NoError(t, err)
		require.Len(t, windows, 1)
		assert.Equal(t, "09:00", windows[0].Start.String())
		assert.Equal(t, "10:30", windows[0].End.String())
	})

	t.Run("разрыв между блоками даёт два окна", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{
				override("09:00", "12:00", true),
				override("14:00", "18:00", true),
			},
		}
		r := NewResolver(repo, nopLogger{})

		windows, err := r.Resolve(ctx, 1, testDate, domain.PersonalContext())
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.Equal(t, "09:00", windows[0].Start.String())
		assert.Equal(t, "12:00", windows[0].End.String())
		assert.Equal(t, "14:00", windows[1].Start.String())
		assert.Equal(t, "18:00", windows[1].End.String())
	})

	t.Run("записи на дату перекрывают еженедельные правила", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("10:00", "14:00", true)},
			rules:     []*domain.RecurringRule{rule("09:00", "18:00")},
		}
		r := NewResolver(repo, nopLogger{})

		windows, err := r.Resolve(ctx, 1, testDate, domain.PersonalContext())
		require.NoError(t, err)
		require.Len(t, windows, 1)
		assert.Equal(t, "10:00", windows[0].Start.String())
		assert.Equal(t, "14:00", windows[0].End.String())
	})

	t.Run("без записей на дату действуют еженедельные правила", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			rules: []*domain.RecurringRule{rule("09:00", "13:00"), rule("14:00", "18:00")},
		}
		r := NewResolver(repo, nopLogger{})

		windows, err := r.Resolve(ctx, 1, testDate, domain.PersonalContext())
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.Equal(t, "09:00", windows[0].Start.String())
		assert.Equal(t, "14:00", windows[1].Start.String())
	})

	t.Run("явный выходной подавляет еженедельные правила", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("00:00", "23:59", false)},
			rules:     []*domain.RecurringRule{rule("09:00", "18:00")},
		}
		r := NewResolver(repo, nopLogger{})

		windows, err := r.Resolve(ctx, 1, testDate, domain.PersonalContext())
		require.NoError(t, err)
		assert.Empty(t, windows)
	})

	t.Run("контекст фильтрует записи чужого календаря", func(t *testing.T) {
		salonID := int64(5)
		salonOverride := override("09:00", "12:00", true)
		salonOverride.SalonID = &salonID

		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{salonOverride},
			rules:     []*domain.RecurringRule{rule("15:00", "18:00")},
		}
		r := NewResolver(repo, nopLogger{})

		// В личном контексте салонная запись не видна - fallback на правила
		personal, err := r.Resolve(ctx, 1, testDate, domain.PersonalContext())
		require.NoError(t, err)
		require.Len(t, personal, 1)
		assert.Equal(t, "15:00", personal[0].Start.String())

		// В салонном контексте запись видна
		salon, err := r.Resolve(ctx, 1, testDate, domain.SalonContext(salonID, nil))
		require.NoError(t, err)
		require.Len(t, salon, 1)
		assert.Equal(t, "09:00", salon[0].Start.String())
	})

	t.Run("блоки разных филиалов не сливаются", func(t *testing.T) {
		salonID := int64(5)
		a := override("09:00", "12:00", true)
		a.SalonID = &salonID
		a.BranchID = ptr.Ptr(int64(1))
		b := override("12:00", "15:00", true)
		b.SalonID = &salonID
		b.BranchID = ptr.Ptr(int64(2))

		repo := &fakeScheduleRepo{overrides: []*domain.DateSchedule{a, b}}
		r := NewResolver(repo, nopLogger{})

		windows, err := r.Resolve(ctx, 1, testDate, domain.SalonContext(salonID, nil))
		require.NoError(t, err)
		assert.Len(t, windows, 2)
	})
}
