package create_reservation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kik4/salon-booking-service/internal/api/handlers"
	"github.com/kik4/salon-booking-service/internal/api/middleware"
	createReservation "github.com/kik4/salon-booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidBody      = "invalid request body"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTimeRange = "invalid time range, expected HH:MM with start before end"
	msgSalonClosed      = "the salon is closed on the requested date"
	msgSlotNotAvailable = "the requested time slot is not available"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var body CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /reservations - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := body.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createReservation.ErrSalonClosed):
			h.logger.Warn("POST /reservations - Salon closed: user=%d, date=%s", userID, body.Date)
			handlers.RespondConflict(w, msgSalonClosed)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: user=%d, date=%s, time=%s-%s",
				userID, body.Date, body.StartTime, body.EndTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, user=%d", result.Reservation.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
