package api

import (
	"log"
	"net/http"
	"time"

	"guru-mess-api/internal/models"
	"guru-mess-api/internal/notify"
	"guru-mess-api/internal/store"
	dto "guru-mess-api/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const reservationConfirmation = "Reservation confirmed! We look forward to serving you."

type ReservationHandler struct {
	Store    store.Store
	Notifier notify.Notifier
}

func NewReservationHandler(st store.Store, notifier notify.Notifier) *ReservationHandler {
	return &ReservationHandler{Store: st, Notifier: notifier}
}

// CreateReservation handles POST /api/reservation. Only presence and type of
// guests are checked, not its range; 4.0 counts as the integer 4.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	reservation := &models.Reservation{
		ID:              uuid.NewString(),
		Name:            *req.Name,
		Email:           *req.Email,
		Phone:           *req.Phone,
		Date:            *req.Date,
		Time:            *req.Time,
		Guests:          int(*req.Guests),
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.Store.AppendReservation(c.Request.Context(), reservation); err != nil {
		log.Printf("Error saving reservation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reservation"})
		return
	}

	traceSubmission(c, h.Notifier, notify.KindReservation, reservation.ID, reservation)

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Success: true,
		Message: reservationConfirmation,
		ID:      reservation.ID,
	})
}
