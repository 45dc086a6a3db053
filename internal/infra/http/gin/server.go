package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"hostbook/internal/infra/config"
	"hostbook/internal/infra/obs"
)

type CalendarHTTP interface {
	Month(c *gin.Context)
	PropertyMonth(c *gin.Context)
}

type BookingHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Delete(c *gin.Context)
}

type BlockedHTTP interface {
	Create(c *gin.Context)
	Delete(c *gin.Context)
}

type PropertyHTTP interface {
	Overview(c *gin.Context)
}

type Handlers struct {
	Calendar CalendarHTTP
	Booking  BookingHTTP
	Blocked  BlockedHTTP
	Property PropertyHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Calendar != nil {
		api.GET("/calendar", h.Calendar.Month)
		api.GET("/properties/:id/calendar", h.Calendar.PropertyMonth)
	}
	if h.Property != nil {
		api.GET("/properties/:id/overview", h.Property.Overview)
	}
	if h.Booking != nil {
		api.GET("/bookings", h.Booking.List)
		api.POST("/bookings", h.Booking.Create)
		api.DELETE("/bookings/:id", h.Booking.Delete)
	}
	if h.Blocked != nil {
		api.POST("/blocked-ranges", h.Blocked.Create)
		api.DELETE("/blocked-ranges/:id", h.Blocked.Delete)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
