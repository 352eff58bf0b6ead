package assign_master

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	assignMaster "github.com/m04kA/SMC-SchedulingService/internal/usecase/assign_master"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается RFC3339"
	msgSalonNotFound      = "салон не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgBranchNotFound     = "филиал не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase AssignMasterUseCase
	logger  Logger
}

func NewHandler(useCase AssignMasterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/assign - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req AssignMasterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(salonID)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/assign - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, assignMaster.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{id}/assign - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, assignMaster.ErrServiceNotFound):
			h.logger.Warn("POST /salons/{id}/assign - Service not found: salon_id=%d, service_id=%d",
				salonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, assignMaster.ErrBranchNotFound):
			h.logger.Warn("POST /salons/{id}/assign - Branch not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, assignMaster.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/assign - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/{id}/assign - Failed to assign master: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.Found {
		h.logger.Info("POST /salons/{id}/assign - Master assigned: salon_id=%d, master_id=%d", salonID, result.MasterID)
	} else {
		h.logger.Info("POST /salons/{id}/assign - No available master: salon_id=%d", salonID)
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}
