package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Resolver вычисляет открытые рабочие окна мастера на конкретную дату,
// объединяя два источника: еженедельные правила и записи на дату.
type Resolver struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewResolver создает новый resolver расписаний
func NewResolver(scheduleRepo ScheduleRepository, logger Logger) *Resolver {
	return &Resolver{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Resolve возвращает упорядоченный список рабочих окон мастера на дату
// в заданном рабочем контексте (личный календарь или салон/филиал).
//
// Приоритет источников:
//  1. Записи на дату (DateSchedule): доступные блоки сортируются по началу,
//     смежные блоки (end[i] == start[i+1]) сливаются в максимальные окна.
//  2. Если записей на дату нет - еженедельные правила для дня недели, как есть.
//  3. Если нет ни того, ни другого - мастер в этот день не работает.
//
// Запись с is_available=false - явный выходной: подавляет fallback на
// еженедельные правила, даже если доступных блоков на дату нет.
func (r *Resolver) Resolve(ctx context.Context, masterID int64, date time.Time, wctx domain.WorkContext) ([]domain.Window, error) {
	overrides, err := r.scheduleRepo.ListDateOverrides(ctx, masterID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list date overrides: %v", ErrInternal, err)
	}

	var dateBlocks []*domain.DateSchedule
	hasContextRecords := false
	for _, o := range overrides {
		if !o.MatchesContext(wctx) {
			continue
		}
		hasContextRecords = true
		if o.IsAvailable {
			dateBlocks = append(dateBlocks, o)
		}
	}

	if hasContextRecords {
		return mergeContiguous(dateBlocks), nil
	}

	rules, err := r.scheduleRepo.ListRecurringRules(ctx, masterID, isoWeekday(date))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list recurring rules: %v", ErrInternal, err)
	}

	windows := make([]domain.Window, 0, len(rules))
	for _, rule := range rules {
		windows = append(windows, domain.Window{
			Start: rule.StartTime,
			End:   rule.EndTime,
		})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.IsBefore(windows[j].Start)
	})

	return windows, nil
}

// mergeContiguous сливает отсортированные по началу смежные блоки расписания
// в максимальные окна. Блоки разных филиалов не сливаются.
func mergeContiguous(blocks []*domain.DateSchedule) []domain.Window {
	if len(blocks) == 0 {
		return []domain.Window{}
	}

	sorted := make([]*domain.DateSchedule, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})

	windows := make([]domain.Window, 0, len(sorted))
	current := domain.Window{
		Start:    sorted[0].StartTime,
		End:      sorted[0].EndTime,
		BranchID: sorted[0].BranchID,
	}

	for _, block := range sorted[1:] {
		if block.StartTime.Equal(current.End) && sameBranch(block.BranchID, current.BranchID) {
			current.End = block.EndTime
			continue
		}
		windows = append(windows, current)
		current = domain.Window{
			Start:    block.StartTime,
			End:      block.EndTime,
			BranchID: block.BranchID,
		}
	}

	return append(windows, current)
}

func sameBranch(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// isoWeekday возвращает день недели по ISO: 1 = понедельник ... 7 = воскресенье
func isoWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
