package get_master_schedule

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	MasterID int64    `json:"masterId"`
	Date     string   `json:"date"`
	Windows  []Window `json:"windows"`
}

// Window рабочее окно мастера на дату
type Window struct {
	Start    string `json:"start"` // HH:MM
	End      string `json:"end"`   // HH:MM
	BranchID *int64 `json:"branchId,omitempty"`
}

// FromDomainWindows конвертирует рабочие окна в HTTP response
func FromDomainWindows(masterID int64, date string, windows []domain.Window) *ScheduleResponse {
	result := make([]Window, len(windows))
	for i, w := range windows {
		result[i] = Window{
			Start:    w.Start.String(),
			End:      w.End.String(),
			BranchID: w.BranchID,
		}
	}

	return &ScheduleResponse{
		MasterID: masterID,
		Date:     date,
		Windows:  result,
	}
}
