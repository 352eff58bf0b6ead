package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// RecurringRule правило еженедельного расписания мастера.
// Одно правило задаёт один открытый интервал на день недели;
// несколько правил на один день допустимы (например, смена с перерывом).
type RecurringRule struct {
	ID        int64
	MasterID  int64
	Weekday   int // ISO: 1 = понедельник ... 7 = воскресенье
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateSchedule переопределение расписания мастера на конкретную дату.
// При наличии записей на дату еженедельные правила для этой даты игнорируются.
// Рабочий день обычно хранится нарезанным на смежные 30-минутные блоки;
// смежные блоки (end[i] == start[i+1]) сливаются в один логический интервал.
//
// Запись с IsAvailable=false означает явный выходной: подавляет fallback на
// еженедельные правила, даже если для этого дня недели они есть.
type DateSchedule struct {
	ID          int64
	MasterID    int64
	SalonID     *int64 // nil = личный календарь мастера
	BranchID    *int64 // опциональная привязка к филиалу
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MatchesContext проверяет принадлежность блока расписания рабочему контексту.
// Блок личного календаря (SalonID=nil) не относится к салонному контексту и наоборот.
func (d *DateSchedule) MatchesContext(wctx WorkContext) bool {
	if wctx.SalonID == nil {
		return d.SalonID == nil
	}
	if d.SalonID == nil || *d.SalonID != *wctx.SalonID {
		return false
	}
	if wctx.BranchID != nil && d.BranchID != nil && *d.BranchID != *wctx.BranchID {
		return false
	}
	return true
}

// Window максимальный непрерывный рабочий интервал мастера на конкретную дату
type Window struct {
	Start    types.TimeString
	End      types.TimeString
	BranchID *int64
}

// Contains проверяет, что интервал [start, end) целиком лежит внутри окна
func (w Window) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.Start) && !w.End.IsBefore(end)
}
