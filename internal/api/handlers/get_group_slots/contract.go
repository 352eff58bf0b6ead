package get_group_slots

import (
	"context"

	getGroupSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_group_slots"
)

type GetGroupSlotsUseCase interface {
	Execute(ctx context.Context, req *getGroupSlots.Request) (*getGroupSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
