package handlers

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SubmissionBodyLimit caps the relay request bodies
const SubmissionBodyLimit = "64K"

// Register mounts the API routes
func (h *Handlers) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.HealthHandler)

	limit := echomiddleware.BodyLimit(SubmissionBodyLimit)
	api.POST("/contact", h.ContactHandler, h.submissionErrors, limit)
	api.POST("/schedule-pickup", h.SchedulePickupHandler, h.submissionErrors, limit)

	api.GET("/services", h.ServicesHandler)
	api.GET("/testimonials", h.TestimonialsHandler)
	api.GET("/testimonials/featured", h.FeaturedTestimonialHandler)
	api.GET("/form-options", h.FormOptionsHandler)
}
