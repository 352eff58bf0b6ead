package conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

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

func override(start, end string, available bool) *domain.DateSchedule {
	return &domain.DateSchedule{
		MasterID:    1,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsAvailable: available,
	}
}

func TestCommitmentValidator_IsWorking(t *testing.T) {
	ctx := context.Background()

	t.Run("интервал покрыт смежными блоками", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{
				override("09:00", "09:30", true),
				override("09:30", "10:00", true),
				override("10:00", "10:30", true),
			},
		}
		v := NewCommitmentValidator(repo, nopLogger{})

		working, err := v.IsWorking(ctx, 1, at(9, 0), at(10, 30), domain.PersonalContext())
		require.NoError(t, err)
		assert.True(t, working)
	})

	t.Run("разрыв между блоками рвёт покрытие", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{
				override("09:00", "09:30", true),
				// разрыв 09:30-10:00
				override("10:00", "10:30", true),
			},
		}
		v := NewCommitmentValidator(repo, nopLogger{})

		working, err := v.IsWorking(ctx, 1, at(9, 0), at(10, 30), domain.PersonalContext())
		require.NoError(t, err)
		assert.False(t, working)
	})

	t.Run("интервал частично за пределами блоков", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("09:00", "12:00", true)},
		}
		v := NewCommitmentValidator(repo, nopLogger{})

		working, err := v.IsWorking(ctx, 1, at(11, 0), at(13, 0), domain.PersonalContext())
		require.NoError(t, err)
		assert.False(t, working)
	})

	t.Run("пересекающиеся блоки расширяют покрытие", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{
				override("09:00", "10:00", true),
				override("09:30", "11:00", true),
			},
		}
		v := NewCommitmentValidator(repo, nopLogger{})

		working, err := v.IsWorking(ctx, 1, at(9, 0), at(11, 0), domain.PersonalContext())
		require.NoError(t, err)
		assert.True(t, working)
	})

	t.Run("fallback на еженедельные правила при отсутствии записей на дату", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			rules: []*domain.RecurringRule{{
				MasterID:  1,
				Weekday:   1,
				StartTime: types.TimeString("09:00"),
				EndTime:   types.TimeString("18:00"),
			}},
		}
		v := NewCommitmentValidator(repo, nopLogger{})

		working, err := v.IsWorking(ctx, 1, at(10, 0), at(12, 0), domain.PersonalContext())
		require.NoError(t, err)
		assert.True(t, working)
	})

	t.Run("явный выходной подавляет fallback", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("00:00", "23:59", false)},
			rules: []*domain.RecurringRule{{
				MasterID:  1,
				Weekday:   1,
				StartTime: types.TimeString("09:00"),
				EndTime:   types.TimeString("18:00"),
			}},
		}
		v := NewCommitmentValidator(repo, nopLogger{})

		working, err := v.IsWorking(ctx, 1, at(10, 0), at(12, 0), domain.PersonalContext())
		require.NoError(t, err)
		assert.False(t, working)
	})

	t.Run("салонная запись не покрывает личный контекст", func(t *testing.T) {
		salonID := int64(5)
		salonOverride := override("09:00", "18:00", true)
		salonOverride.SalonID = &salonID

		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{salonOverride},
		}
		v := NewCommitmentValidator(repo, nopLogger{})

		personal, err := v.IsWorking(ctx, 1, at(10, 0), at(12, 0), domain.PersonalContext())
		require.NoError(t, err)
		assert.False(t, personal)

		salon, err := v.IsWorking(ctx, 1, at(10, 0), at(12, 0), domain.SalonContext(salonID, nil))
		require.NoError(t, err)
		assert.True(t, salon)
	})

	t.Run("интервал через полночь не покрывается", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			overrides: []*domain.DateSchedule{override("00:00", "24:00", true)},
		}
		v := NewCommitmentValidator(repo, nopLogger{})

		working, err := v.IsWorking(ctx, 1, at(23, 0), at(23, 0).Add(2*time.Hour), domain.PersonalContext())
		require.NoError(t, err)
		assert.False(t, working)
	})

	t.Run("некорректный интервал", func(t *testing.T) {
		v := NewCommitmentValidator(&fakeScheduleRepo{}, nopLogger{})

		_, err := v.IsWorking(ctx, 1, at(12, 0), at(10, 0), domain.PersonalContext())
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}
