package handlers

import (
	"net/http"

	"purebiz_laundry_go/models"

	"github.com/labstack/echo/v4"
)

const healthMessage = "PureBiz Laundry Services API is running"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler reports liveness: GET /api/health
func (h *Handlers) HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "OK", Message: healthMessage})
}

// ServicesHandler returns the service offerings and process steps
func (h *Handlers) ServicesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"services": h.catalog.Services(),
		"process":  h.catalog.ProcessSteps(),
	})
}

func (h *Handlers) TestimonialsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"testimonials": h.catalog.Testimonials(),
		"clients":      h.catalog.ClientLogos(),
	})
}

// FeaturedTestimonialHandler returns the testimonial the carousel is showing
func (h *Handlers) FeaturedTestimonialHandler(c echo.Context) error {
	index := h.carousel.Current()
	testimonial, ok := h.catalog.Testimonial(index)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "No testimonials available")
	}
	return c.JSON(http.StatusOK, models.FeaturedTestimonial{
		Index:       index,
		Total:       h.carousel.Len(),
		Testimonial: testimonial,
	})
}

func (h *Handlers) FormOptionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.FormOptions())
}
