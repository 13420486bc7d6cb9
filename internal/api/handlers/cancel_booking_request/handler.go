package cancel_booking_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers"
	cancelBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/cancel_booking_request"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRequestNotFound    = "заявка не найдена"
	msgAlreadyTerminal    = "заявка уже завершена"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CancelBookingRequestUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-requests/{requestId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /booking-requests/{id}/cancel - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	// Тело опционально: причину можно не указывать
	var req CancelRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /booking-requests/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBookingRequest.Request{
		RequestID: requestID,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBookingRequest.ErrInvalidInput):
			h.logger.Warn("POST /booking-requests/{id}/cancel - Invalid input: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancelBookingRequest.ErrRequestNotFound):
			h.logger.Warn("POST /booking-requests/{id}/cancel - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, cancelBookingRequest.ErrInvalidStateTransition):
			h.logger.Warn("POST /booking-requests/{id}/cancel - Already terminal: request_id=%d", requestID)
			handlers.RespondConflict(w, msgAlreadyTerminal)

		default:
			h.logger.Error("POST /booking-requests/{id}/cancel - Failed to cancel: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-requests/{id}/cancel - Request cancelled: request_id=%d, late=%t",
		result.RequestID, result.LateCancellation)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
