package submit_booking_request

import (
	"errors"
	"net/http"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/middleware"
	submitBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/submit_booking_request"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные заявки"
	msgGuestNotAllowed    = "салон не принимает гостевые заявки"
	msgInvalidRequestDate = "некорректная дата записи"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgTooLateToBook      = "слишком поздно для записи на это время"
	msgSlotUnavailable    = "выбранное время недоступно"
)

type Handler struct {
	useCase SubmitBookingRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-requests
// Эндпоинт публичный: авторизованный клиент опознаётся по X-User-ID,
// гость передаёт контакты в теле запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Авторизованный клиент может присутствовать, но не обязан
	var clientID *int64
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		clientID = ptr.Ptr(userID)
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /booking-requests - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBookingRequest.ErrInvalidInput):
			h.logger.Warn("POST /booking-requests - Invalid input: salon_id=%d, staff_id=%d, error=%v",
				req.SalonID, req.StaffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitBookingRequest.ErrGuestBookingNotAllowed):
			h.logger.Warn("POST /booking-requests - Guest booking not allowed: salon_id=%d", req.SalonID)
			handlers.RespondForbidden(w, msgGuestNotAllowed)

		case errors.Is(err, submitBookingRequest.ErrInvalidDate):
			h.logger.Warn("POST /booking-requests - Invalid date: salon_id=%d, date=%s", req.SalonID, req.RequestedDate)
			handlers.RespondBadRequest(w, msgInvalidRequestDate)

		case errors.Is(err, submitBookingRequest.ErrDateTooFarInFuture):
			h.logger.Warn("POST /booking-requests - Date too far in future: salon_id=%d, date=%s",
				req.SalonID, req.RequestedDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, submitBookingRequest.ErrTooLateToBook):
			h.logger.Warn("POST /booking-requests - Too late to book: salon_id=%d, time=%s",
				req.SalonID, req.RequestedTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, submitBookingRequest.ErrSlotUnavailable):
			h.logger.Warn("POST /booking-requests - Slot unavailable: salon_id=%d, staff_id=%d, time=%s",
				req.SalonID, req.StaffID, req.RequestedTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /booking-requests - Failed to submit request: salon_id=%d, staff_id=%d, error=%v",
				req.SalonID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-requests - Request submitted: request_id=%d, salon_id=%d, status=%s",
		result.ID, req.SalonID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
