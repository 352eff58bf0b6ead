package get_group_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
}

func slot(hour, minute int) domain.Slot {
	return domain.Slot{Start: at(hour, minute), End: at(hour, minute).Add(30 * time.Minute)}
}

func TestMergeGroupSlots(t *testing.T) {
	t.Run("совпадающие слоты дедуплицируются по времени начала", func(t *testing.T) {
		members := []memberSlots{
			{masterID: 1, load: 0, slots: []domain.Slot{slot(10, 0), slot(10, 30)}},
			{masterID: 2, load: 0, slots: []domain.Slot{slot(10, 0), slot(11, 0)}},
		}

		merged := mergeGroupSlots(members)

		starts := make([]time.Time, len(merged))
		for i, s := range merged {
			starts[i] = s.Start
		}
		assert.Equal(t, []time.Time{at(10, 0), at(10, 30), at(11, 0)}, starts)
	})

	t.Run("при совпадении времени побеждает менее загруженный мастер", func(t *testing.T) {
		// Нагрузка влияет только на выбор мастера-владельца слота,
		// наружу уходит само время - проверяем, что слот не теряется
		// и что менее загруженный мастер вытесняет более загруженного.
		heavy := memberSlots{masterID: 1, load: 3, slots: []domain.Slot{slot(10, 0)}}
		light := memberSlots{masterID: 2, load: 0, slots: []domain.Slot{slot(10, 0)}}

		merged := mergeGroupSlots([]memberSlots{heavy, light})
		assert.Len(t, merged, 1)

		// Порядок обхода не должен влиять на результат
		mergedReversed := mergeGroupSlots([]memberSlots{light, heavy})
		assert.Equal(t, merged, mergedReversed)
	})

	t.Run("при равной нагрузке детерминированно выбирается меньший ID", func(t *testing.T) {
		a := memberSlots{masterID: 7, load: 1, slots: []domain.Slot{slot(10, 0)}}
		b := memberSlots{masterID: 3, load: 1, slots: []domain.Slot{slot(10, 0)}}

		first := mergeGroupSlots([]memberSlots{a, b})
		second := mergeGroupSlots([]memberSlots{b, a})
		assert.Equal(t, first, second)
	})

	t.Run("результат отсортирован по возрастанию", func(t *testing.T) {
		members := []memberSlots{
			{masterID: 1, load: 0, slots: []domain.Slot{slot(15, 0), slot(9, 0)}},
			{masterID: 2, load: 0, slots: []domain.Slot{slot(12, 0)}},
		}

		merged := mergeGroupSlots(members)

		for i := 1; i < len(merged); i++ {
			assert.True(t, merged[i-1].Start.Before(merged[i].Start))
		}
	})

	t.Run("пустой вход", func(t *testing.T) {
		assert.Empty(t, mergeGroupSlots(nil))
	})
}
