package types

import "time"

// Overlaps проверяет пересечение двух полуинтервалов [aStart, aEnd) и [bStart, bEnd).
// Оба операнда приводятся к UTC перед сравнением - все сравнения интервалов
// в сервисе выполняются в единой системе отсчёта.
//
// Граничные случаи НЕ считаются пересечением:
// - [10:00, 10:30) и [10:30, 11:00) → false (граничат)
// - [10:00, 10:30) и [10:20, 10:40) → true (пересекаются на 10:20-10:30)
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = aStart.UTC(), aEnd.UTC()
	bStart, bEnd = bStart.UTC(), bEnd.UTC()
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapsTime проверяет пересечение двух полуинтервалов времени в рамках одного дня.
// Семантика та же, что и у Overlaps: строгие неравенства, границы не пересекаются.
func OverlapsTime(aStart, aEnd, bStart, bEnd TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}
