package get_group_slots

import (
	"sort"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// memberSlots слоты одного мастера вместе с его дневной нагрузкой
type memberSlots struct {
	masterID int64
	load     int // количество активных бронирований мастера за дату
	slots    []domain.Slot
}

// mergeGroupSlots объединяет слоты мастеров по точному времени начала.
// Когда один и тот же слот доступен у нескольких мастеров, побеждает мастер
// с меньшей дневной нагрузкой - так записи распределяются по персоналу равномерно.
// При равной нагрузке детерминированно выбирается меньший ID мастера.
//
// Дедупликация корректна только потому, что сетка слотов общая для всех
// мастеров (domain.SlotStepMinutes): времена начала разных мастеров совпадают
// с точностью до равенства.
func mergeGroupSlots(members []memberSlots) []domain.Slot {
	type winner struct {
		slot     domain.Slot
		masterID int64
		load     int
	}

	best := make(map[int64]winner)

	for _, member := range members {
		for _, slot := range member.slots {
			key := slot.Start.Unix()

			current, exists := best[key]
			if !exists ||
				member.load < current.load ||
				(member.load == current.load && member.masterID < current.masterID) {
				best[key] = winner{slot: slot, masterID: member.masterID, load: member.load}
			}
		}
	}

	merged := make([]domain.Slot, 0, len(best))
	for _, w := range best {
		merged = append(merged, w.slot)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Start.Before(merged[j].Start)
	})

	return merged
}
