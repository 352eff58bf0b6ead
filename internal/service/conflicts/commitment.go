package conflicts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CommitmentValidator проверяет, что мастер действительно работает на протяжении
// всего запрошенного интервала - по личному или салонному календарю.
type CommitmentValidator struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewCommitmentValidator создает новый валидатор
func NewCommitmentValidator(scheduleRepo ScheduleRepository, logger Logger) *CommitmentValidator {
	return &CommitmentValidator{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// IsWorking проверяет, что мастер работает на всём интервале [start, end)
// в заданном рабочем контексте.
//
// Рабочий день мастера хранится нарезанным на фиксированные блоки,
// поэтому покрытие интервала проверяется проходом по отсортированным блокам:
// каждый следующий блок обязан начинаться ровно там, где закончился предыдущий
// (строгая смежность), пока накопленное покрытие не достигнет end.
// Любой разрыв или несовпадение контекста - false.
func (v *CommitmentValidator) IsWorking(ctx context.Context, masterID int64, start, end time.Time, wctx domain.WorkContext) (bool, error) {
	if !start.Before(end) {
		return false, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, start, end)
	}

	start, end = start.UTC(), end.UTC()
	date := truncateToDay(start)

	// Интервал через полночь не покрывается расписанием одного дня
	if end.After(date.AddDate(0, 0, 1)) {
		return false, nil
	}

	blocks, err := v.workingBlocks(ctx, masterID, date, wctx)
	if err != nil {
		return false, err
	}
	if len(blocks) == 0 {
		return false, nil
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].start.Before(blocks[j].start)
	})

	// Fold по отсортированным блокам: covered отслеживает достигнутое покрытие
	covered := time.Time{}
	for _, block := range blocks {
		switch {
		case covered.IsZero():
			// Ищем первый блок, накрывающий начало интервала
			if !block.start.After(start) && block.end.After(start) {
				covered = block.end
			}
		case block.start.Equal(covered):
			// Строгая смежность: блок продолжает покрытие без разрыва
			covered = block.end
		case block.start.Before(covered):
			// Пересекающиеся блоки расписания допустимы, расширяем покрытие
			if block.end.After(covered) {
				covered = block.end
			}
		default:
			// Разрыв - дальше покрытие не растёт
		}

		if !covered.IsZero() && !covered.Before(end) {
			return true, nil
		}
	}

	return false, nil
}

type workBlock struct {
	start time.Time
	end   time.Time
}

// workingBlocks возвращает рабочие блоки мастера на дату в заданном контексте.
// Записи на дату имеют приоритет; явная запись "выходной" подавляет fallback
// на еженедельные правила. При полном отсутствии записей на дату в этом
// контексте используются еженедельные правила.
func (v *CommitmentValidator) workingBlocks(ctx context.Context, masterID int64, date time.Time, wctx domain.WorkContext) ([]workBlock, error) {
	overrides, err := v.scheduleRepo.ListDateOverrides(ctx, masterID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list date overrides: %v", ErrInternal, err)
	}

	var blocks []workBlock
	hasContextRecords := false

	for _, o := range overrides {
		if !o.MatchesContext(wctx) {
			continue
		}
		hasContextRecords = true
		if !o.IsAvailable {
			continue
		}
		block, err := blockFromTimes(date, o.StartTime, o.EndTime)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	// Записи на дату есть (пусть даже только "выходной") - правила недели не смотрим
	if hasContextRecords {
		return blocks, nil
	}

	rules, err := v.scheduleRepo.ListRecurringRules(ctx, masterID, isoWeekday(date))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list recurring rules: %v", ErrInternal, err)
	}

	for _, r := range rules {
		block, err := blockFromTimes(date, r.StartTime, r.EndTime)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

func blockFromTimes(date time.Time, startTime, endTime types.TimeString) (workBlock, error) {
	start, err := startTime.OnDate(date)
	if err != nil {
		return workBlock{}, fmt.Errorf("%w: invalid schedule time %q: %v", ErrInternal, startTime, err)
	}
	end, err := endTime.OnDate(date)
	if err != nil {
		return workBlock{}, fmt.Errorf("%w: invalid schedule time %q: %v", ErrInternal, endTime, err)
	}
	return workBlock{start: start, end: end}, nil
}

// isoWeekday возвращает день недели по ISO: 1 = понедельник ... 7 = воскресенье
func isoWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
