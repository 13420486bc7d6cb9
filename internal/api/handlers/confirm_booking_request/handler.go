package confirm_booking_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers"
	confirmBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/confirm_booking_request"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
	msgRequestNotFound  = "заявка не найдена"
	msgAlreadyResolved  = "заявка уже разрешена"
	msgSlotConflict     = "время уже занято, заявка осталась в ожидании"
)

type Handler struct {
	useCase ConfirmBookingRequestUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-requests/{requestId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /booking-requests/{id}/confirm - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBookingRequest.Request{RequestID: requestID})
	if err != nil {
		switch {
		case errors.Is(err, confirmBookingRequest.ErrInvalidInput):
			h.logger.Warn("POST /booking-requests/{id}/confirm - Invalid input: request_id=%d", requestID)
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		case errors.Is(err, confirmBookingRequest.ErrRequestNotFound):
			h.logger.Warn("POST /booking-requests/{id}/confirm - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, confirmBookingRequest.ErrInvalidStateTransition):
			h.logger.Warn("POST /booking-requests/{id}/confirm - Already resolved: request_id=%d", requestID)
			handlers.RespondConflict(w, msgAlreadyResolved)

		case errors.Is(err, confirmBookingRequest.ErrSlotConflict):
			h.logger.Warn("POST /booking-requests/{id}/confirm - Slot conflict: request_id=%d", requestID)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /booking-requests/{id}/confirm - Failed to confirm: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-requests/{id}/confirm - Request confirmed: request_id=%d, appointment_id=%d",
		result.RequestID, result.AppointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
