package get_user_reservations

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kik4/salon-booking-service/internal/api/handlers"
	"github.com/kik4/salon-booking-service/internal/api/middleware"
	"github.com/kik4/salon-booking-service/internal/service/reservations/models"
)

const (
	msgInvalidUserID = "invalid user ID"
	msgAccessDenied  = "access denied"
)

// ReservationListResponse is the HTTP response.
type ReservationListResponse struct {
	Reservations []ReservationItem `json:"reservations"`
}

// ReservationItem is one reservation in the list.
type ReservationItem struct {
	ID        int64   `json:"id"`
	MenuName  string  `json:"menu_name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	pathUserID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reservations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// A user can only list their own reservations.
	if pathUserID != authUserID {
		h.logger.Warn("GET /users/{id}/reservations - Access denied: path_user=%d, auth_user=%d",
			pathUserID, authUserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.ListByUser(r.Context(), pathUserID)
	if err != nil {
		h.logger.Error("GET /users/{id}/reservations - Failed: user=%d, error=%v", pathUserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/reservations - Listed %d reservations for user=%d",
		len(result.Reservations), pathUserID)
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.ReservationListResponse) *ReservationListResponse {
	items := make([]ReservationItem, len(resp.Reservations))
	for i, res := range resp.Reservations {
		items[i] = ReservationItem{
			ID:        res.ID,
			MenuName:  res.MenuName,
			StartTime: res.StartTime,
			EndTime:   res.EndTime,
			Notes:     res.Notes,
			CreatedAt: res.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return &ReservationListResponse{Reservations: items}
}
