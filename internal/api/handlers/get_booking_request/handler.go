package get_booking_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/middleware"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/requests"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgRequestNotFound  = "заявка не найдена"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /booking-requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking-requests/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), requestID, userID)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrRequestNotFound):
			h.logger.Warn("GET /booking-requests/{id} - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, requests.ErrAccessDenied):
			h.logger.Warn("GET /booking-requests/{id} - Access denied: request_id=%d, user_id=%d",
				requestID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /booking-requests/{id} - Failed to get request: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-requests/{id} - Request retrieved successfully: request_id=%d", requestID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
