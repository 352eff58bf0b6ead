package get_group_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getGroupSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_group_slots"
)

// GroupSlotsResponse HTTP response model.
// Мастер наружу не отдается: клиент выбирает только время.
type GroupSlotsResponse struct {
	SalonID   int64  `json:"salonId"`
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"`
	Slots     []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getGroupSlots.Response) *GroupSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		}
	}

	return &GroupSlotsResponse{
		SalonID:   resp.SalonID,
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(salonID int64, serviceIDStr, dateStr, durationStr, branchIDStr string) (*getGroupSlots.Request, error) {
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, err
	}

	req := &getGroupSlots.Request{
		SalonID:         salonID,
		ServiceID:       serviceID,
		Date:            date,
		DurationMinutes: duration,
	}

	if branchIDStr != "" {
		branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.BranchID = &branchID
	}

	return req, nil
}
