package get_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_slots"
)

const (
	msgInvalidMasterID = "некорректный ID мастера"
	msgMissingDate     = "дата обязательна"
	msgInvalidParams   = "некорректные параметры запроса"
	msgMissingDuration = "длительность услуги обязательна"
	msgMasterNotFound  = "мастер не найден"
	msgSalonNotFound   = "салон не найден"
	msgBranchNotFound  = "филиал не найден"
	msgInvalidInput    = "некорректные входные данные"
)

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/slots
// Query params: date (required, YYYY-MM-DD), durationMinutes (required),
// salonId, branchId (опционально, салонный контекст)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/slots - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /masters/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationStr := query.Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET /masters/{id}/slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(masterID, dateStr, durationStr, query.Get("salonId"), query.Get("branchId"))
	if err != nil {
		h.logger.Warn("GET /masters/{id}/slots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{id}/slots - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, getSlots.ErrSalonNotFound):
			h.logger.Warn("GET /masters/{id}/slots - Salon not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getSlots.ErrBranchNotFound):
			h.logger.Warn("GET /masters/{id}/slots - Branch not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /masters/{id}/slots - Invalid input: master_id=%d, error=%v", masterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /masters/{id}/slots - Failed to get slots: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /masters/{id}/slots - Slots retrieved successfully: master_id=%d, date=%s, slots_count=%d",
		masterID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
