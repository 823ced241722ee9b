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

const contactConfirmation = "Thank you for reaching out! We will get back to you soon."

type ContactHandler struct {
	Store    store.Store
	Notifier notify.Notifier
}

func NewContactHandler(st store.Store, notifier notify.Notifier) *ContactHandler {
	return &ContactHandler{Store: st, Notifier: notifier}
}

// SubmitContact handles POST /api/contact. name, email and message must be
// present as text (empty text is accepted); phone is optional.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var form dto.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	msg := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      *form.Name,
		Email:     *form.Email,
		Phone:     form.Phone,
		Message:   *form.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.Store.AppendContact(c.Request.Context(), msg); err != nil {
		log.Printf("Error saving contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact message"})
		return
	}

	traceSubmission(c, h.Notifier, notify.KindContact, msg.ID, msg)

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Success: true,
		Message: contactConfirmation,
		ID:      msg.ID,
	})
}
