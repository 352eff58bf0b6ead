package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID  int64   `json:"clientId"`
	MasterID  *int64  `json:"masterId,omitempty"`
	SalonID   *int64  `json:"salonId,omitempty"`
	BranchID  *int64  `json:"branchId,omitempty"`
	ServiceID int64   `json:"serviceId"`
	Start     string  `json:"start"` // RFC3339
	End       string  `json:"end"`   // RFC3339
	Comment   *string `json:"comment,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	MasterID  *int64 `json:"masterId,omitempty"`
	SalonID   *int64 `json:"salonId,omitempty"`
	BranchID  *int64 `json:"branchId,omitempty"`
	ServiceID int64  `json:"serviceId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`

	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Comment      *string `json:"comment,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:  r.ClientID,
		MasterID:  r.MasterID,
		SalonID:   r.SalonID,
		BranchID:  r.BranchID,
		ServiceID: r.ServiceID,
		Start:     start.UTC(),
		End:       end.UTC(),
		Comment:   r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:           resp.ID,
		ClientID:     resp.ClientID,
		MasterID:     resp.MasterID,
		SalonID:      resp.SalonID,
		BranchID:     resp.BranchID,
		ServiceID:    resp.ServiceID,
		Start:        resp.Start.Format(time.RFC3339),
		End:          resp.End.Format(time.RFC3339),
		Status:       resp.Status,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		Comment:      resp.Comment,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
