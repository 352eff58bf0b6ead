package assign_master

import (
	"context"

	assignMaster "github.com/m04kA/SMC-SchedulingService/internal/usecase/assign_master"
)

type AssignMasterUseCase interface {
	Execute(ctx context.Context, req *assignMaster.Request) (*assignMaster.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
