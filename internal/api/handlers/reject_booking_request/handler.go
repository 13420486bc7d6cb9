package reject_booking_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers"
	rejectBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/reject_booking_request"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRequestNotFound    = "заявка не найдена"
	msgAlreadyResolved    = "заявка уже разрешена"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase RejectBookingRequestUseCase
	logger  Logger
}

func NewHandler(useCase RejectBookingRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-requests/{requestId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /booking-requests/{id}/reject - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	// Тело опционально: причину можно не указывать
	var req RejectRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /booking-requests/{id}/reject - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &rejectBookingRequest.Request{
		RequestID: requestID,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, rejectBookingRequest.ErrInvalidInput):
			h.logger.Warn("POST /booking-requests/{id}/reject - Invalid input: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rejectBookingRequest.ErrRequestNotFound):
			h.logger.Warn("POST /booking-requests/{id}/reject - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, rejectBookingRequest.ErrInvalidStateTransition):
			h.logger.Warn("POST /booking-requests/{id}/reject - Already resolved: request_id=%d", requestID)
			handlers.RespondConflict(w, msgAlreadyResolved)

		default:
			h.logger.Error("POST /booking-requests/{id}/reject - Failed to reject: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-requests/{id}/reject - Request rejected: request_id=%d", result.RequestID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
