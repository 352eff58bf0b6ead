package assign_master

import (
	"time"

	assignMaster "github.com/m04kA/SMC-SchedulingService/internal/usecase/assign_master"
)

// AssignMasterRequest HTTP request model
type AssignMasterRequest struct {
	ServiceID int64  `json:"serviceId"`
	Start     string `json:"start"` // RFC3339
	End       string `json:"end"`   // RFC3339
	BranchID  *int64 `json:"branchId,omitempty"`
}

// AssignMasterResponse HTTP response model.
// found=false - валидный ответ "никто не доступен", не ошибка.
type AssignMasterResponse struct {
	Found    bool   `json:"found"`
	MasterID *int64 `json:"masterId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AssignMasterRequest) ToUseCaseRequest(salonID int64) (*assignMaster.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &assignMaster.Request{
		SalonID:   salonID,
		ServiceID: r.ServiceID,
		Start:     start.UTC(),
		End:       end.UTC(),
		BranchID:  r.BranchID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignMaster.Response) *AssignMasterResponse {
	if !resp.Found {
		return &AssignMasterResponse{Found: false}
	}
	masterID := resp.MasterID
	return &AssignMasterResponse{Found: true, MasterID: &masterID}
}
