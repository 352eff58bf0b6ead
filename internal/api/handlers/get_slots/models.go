package get_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	MasterID int64  `json:"masterId"`
	Date     string `json:"date"`
	Slots    []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		}
	}

	return &SlotsResponse{
		MasterID: resp.MasterID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(masterID int64, dateStr, durationStr, salonIDStr, branchIDStr string) (*getSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, err
	}

	req := &getSlots.Request{
		MasterID:        masterID,
		Date:            date,
		DurationMinutes: duration,
	}

	if salonIDStr != "" {
		salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.SalonID = &salonID
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
