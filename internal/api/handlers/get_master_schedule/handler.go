package get_master_schedule

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const (
	msgInvalidMasterID = "некорректный ID мастера"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/schedule
// Query params: date (required, YYYY-MM-DD), salonId, branchId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/schedule - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /masters/{id}/schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	wctx := domain.PersonalContext()
	if salonIDStr := query.Get("salonId"); salonIDStr != "" {
		salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /masters/{id}/schedule - Invalid salon ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}

		var branchID *int64
		if branchIDStr := query.Get("branchId"); branchIDStr != "" {
			id, err := strconv.ParseInt(branchIDStr, 10, 64)
			if err != nil {
				h.logger.Warn("GET /masters/{id}/schedule - Invalid branch ID: %v", err)
				handlers.RespondBadRequest(w, msgInvalidParams)
				return
			}
			branchID = &id
		}

		wctx = domain.SalonContext(salonID, branchID)
	}

	windows, err := h.service.Windows(r.Context(), masterID, date, wctx)
	if err != nil {
		h.logger.Error("GET /masters/{id}/schedule - Failed to resolve schedule: master_id=%d, error=%v",
			masterID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromDomainWindows(masterID, dateStr, windows)

	h.logger.Info("GET /masters/{id}/schedule - Schedule resolved: master_id=%d, date=%s, windows_count=%d",
		masterID, dateStr, len(windows))
	handlers.RespondJSON(w, http.StatusOK, response)
}
