package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	getAvailableSlots "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration    = "некорректная длительность услуги"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgInvalidSalonConfig = "некорректная конфигурация салона"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/staff/{staffId}/available-slots
// Query параметры: date (обязательный), durationMinutes (обязательный), serviceId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	durationMinutes, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	var serviceID int64
	if raw := query.Get("serviceId"); raw != "" {
		serviceID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		SalonID:                salonID,
		StaffID:                staffID,
		ServiceID:              serviceID,
		Date:                   date,
		ServiceDurationMinutes: durationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: salon_id=%d, staff_id=%d, error=%v",
				salonID, staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailableSlots.ErrInvalidConfiguration):
			h.logger.Warn("GET /available-slots - Invalid configuration: salon_id=%d, staff_id=%d, error=%v",
				salonID, staffID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSalonConfig)

		default:
			h.logger.Error("GET /available-slots - Failed to compute slots: salon_id=%d, staff_id=%d, error=%v",
				salonID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots returned: salon_id=%d, staff_id=%d, date=%s",
		len(result.Slots), salonID, staffID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
