package api

import (
	"net/http"

	"guru-mess-api/internal/notify"
	"guru-mess-api/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a gin engine with logging, recovery and
// fully open CORS.
func NewRouter(st store.Store, notifier notify.Notifier) *gin.Engine {
	useJSONFieldNames()

	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	healthHandler := NewHealthHandler()
	contactHandler := NewContactHandler(st, notifier)
	reservationHandler := NewReservationHandler(st, notifier)
	menuHandler := NewMenuHandler()

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", healthHandler.GetHealth)
		apiGroup.POST("/contact", contactHandler.SubmitContact)
		apiGroup.POST("/reservation", reservationHandler.CreateReservation)
		apiGroup.GET("/menu", menuHandler.GetMenu)
	}

	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodHead, http.MethodOptions,
	}
	cfg.AllowHeaders = []string{"*"}
	return cfg
}
