package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// GenerateGrid генерирует кандидатные времена начала слотов внутри окна [windowStart, windowEnd).
// Возвращает каждое время t, для которого:
// - t >= windowStart
// - t + SlotStepMinutes <= windowEnd
// - t выровнено по сетке: минуты от полуночи кратны SlotStepMinutes
//
// Шаг сетки фиксирован на уровне платформы (domain.SlotStepMinutes), а не параметр:
// это гарантирует выравнивание слотов разных мастеров между собой, на котором
// держится дедупликация при групповом подборе.
func GenerateGrid(windowStart, windowEnd types.TimeString) ([]types.TimeString, error) {
	startMin, err := windowStart.MinutesFromMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid window start: %v", ErrInternal, err)
	}
	endMin, err := windowEnd.MinutesFromMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid window end: %v", ErrInternal, err)
	}

	// Первый кандидат - ближайшее выровненное время не раньше начала окна
	first := alignUp(startMin, domain.SlotStepMinutes)

	candidates := make([]types.TimeString, 0)
	for t := first; t+domain.SlotStepMinutes <= endMin; t += domain.SlotStepMinutes {
		candidate, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			return nil, fmt.Errorf("%w: grid candidate out of range: %v", ErrInternal, err)
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// alignUp округляет minutes вверх до ближайшего кратного step
func alignUp(minutes, step int) int {
	if rem := minutes % step; rem != 0 {
		return minutes + step - rem
	}
	return minutes
}
