package api

import (
	"log"

	"guru-mess-api/internal/notify"

	"github.com/gin-gonic/gin"
)

func traceSubmission(c *gin.Context, notifier notify.Notifier, kind, id string, record any) {
	if notifier == nil {
		return
	}
	event := notify.Event{Kind: kind, ID: id, Record: record}
	if err := notifier.Notify(c.Request.Context(), event); err != nil {
		log.Printf("Error notifying %s %s: %v", kind, id, err)
	}
}
