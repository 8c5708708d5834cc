package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-match-system.com/task-match-system/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/requests", h.CreateRequest)
	e.GET("/requests/:id", h.GetRequest)
	e.POST("/requests/:id/assign", h.TryAssign)
	e.POST("/requests/:id/start", h.MarkStarted)
	e.POST("/requests/:id/complete", h.MarkCompleted)
	e.POST("/requests/:id/ratings/worker", h.RateWorker)
	e.POST("/requests/:id/ratings/client", h.RateClient)
	e.GET("/requests/:id/ratings", h.ListRatings)

	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id/slots", h.AvailableTimeSlotsForTask)
	e.GET("/timeslots", h.ListTimeSlots)
	e.GET("/availability/workers", h.EligibleWorkers)
	e.PUT("/workers/:id/availability", h.ReplaceAvailability)
}
