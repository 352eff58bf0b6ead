package get_group_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getGroupSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_group_slots"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgMissingDuration  = "длительность услуги обязательна"
	msgInvalidParams    = "некорректные параметры запроса"
	msgSalonNotFound    = "салон не найден"
	msgServiceNotFound  = "услуга не найдена"
	msgBranchNotFound   = "филиал не найден"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	useCase GetGroupSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetGroupSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/slots
// Query params: serviceId (required), date (required, YYYY-MM-DD),
// durationMinutes (required), branchId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/slots - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	query := r.URL.Query()

	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /salons/{id}/slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationStr := query.Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET /salons/{id}/slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(salonID, serviceIDStr, dateStr, durationStr, query.Get("branchId"))
	if err != nil {
		h.logger.Warn("GET /salons/{id}/slots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getGroupSlots.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/slots - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getGroupSlots.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/slots - Service not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getGroupSlots.ErrBranchNotFound):
			h.logger.Warn("GET /salons/{id}/slots - Branch not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getGroupSlots.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/slots - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /salons/{id}/slots - Failed to get slots: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salons/{id}/slots - Slots retrieved successfully: salon_id=%d, date=%s, slots_count=%d",
		salonID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
