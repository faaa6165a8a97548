package handlers

import (
	"errors"
	"net/http"

	"purebiz_laundry_go/middleware"
	"purebiz_laundry_go/models"
	"purebiz_laundry_go/services"
	"purebiz_laundry_go/services/i18n"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Translation key prefixes, one per form
const (
	formContact = "contact"
	formPickup  = "pickup"
)

// ContactHandler relays the contact form: POST /api/contact
func (h *Handlers) ContactHandler(c echo.Context) error {
	var req models.ContactSubmission
	if err := c.Bind(&req); err != nil {
		return h.invalidBody(c, formContact, err)
	}

	lang := middleware.GetLocale(c)
	err := h.relay.SubmitContact(c.Request().Context(), req, lang)
	return h.respond(c, formContact, lang, err)
}

// SchedulePickupHandler relays the pickup form: POST /api/schedule-pickup
func (h *Handlers) SchedulePickupHandler(c echo.Context) error {
	var req models.PickupSubmission
	if err := c.Bind(&req); err != nil {
		return h.invalidBody(c, formPickup, err)
	}

	lang := middleware.GetLocale(c)
	err := h.relay.SchedulePickup(c.Request().Context(), req, lang)
	return h.respond(c, formPickup, lang, err)
}

func (h *Handlers) invalidBody(c echo.Context, form string, err error) error {
	h.logger.Debug("invalid submission body",
		zap.String("form", form),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	// A chunked body over the limit only fails while Bind reads it
	if tooLarge(err) {
		return bodyTooLarge(c)
	}
	return c.JSON(http.StatusBadRequest, models.SubmissionResponse{
		Success: false,
		Message: i18n.Translate(middleware.GetLocale(c), "api.invalid_body"),
	})
}

// submissionErrors answers the body limit rejection with the submission
// envelope instead of echo's default error body
func (h *Handlers) submissionErrors(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil && tooLarge(err) && !c.Response().Committed {
			h.logger.Debug("submission body too large",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Int64("content_length", c.Request().ContentLength),
			)
			return bodyTooLarge(c)
		}
		return err
	}
}

func tooLarge(err error) bool {
	var he *echo.HTTPError
	return errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge
}

func bodyTooLarge(c echo.Context) error {
	return c.JSON(http.StatusRequestEntityTooLarge, models.SubmissionResponse{
		Success: false,
		Message: i18n.Translate(middleware.GetLocale(c), "api.body_too_large"),
	})
}

// respond maps a relay result to the response envelope. Error details stay in
// the log; the client only sees the translated message.
func (h *Handlers) respond(c echo.Context, form, lang string, err error) error {
	if err == nil {
		return c.JSON(http.StatusOK, models.SubmissionResponse{
			Success: true,
			Message: i18n.Translate(lang, form+".success"),
		})
	}

	requestID := middleware.GetRequestID(c)

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		h.logger.Debug("submission rejected",
			zap.String("form", form),
			zap.String("request_id", requestID),
			zap.Strings("missing_fields", verr.Fields),
			zap.Strings("invalid_fields", verr.Invalid),
		)
		key := form + ".missing_fields"
		if len(verr.Fields) == 0 {
			key = "api.invalid_email"
		}
		return c.JSON(http.StatusBadRequest, models.SubmissionResponse{
			Success: false,
			Message: i18n.Translate(lang, key),
		})
	}

	fields := []zap.Field{
		zap.String("form", form),
		zap.String("request_id", requestID),
		zap.Error(err),
	}
	var derr *services.DispatchError
	if errors.As(err, &derr) {
		fields = append(fields, zap.String("leg", derr.Leg))
	}
	h.logger.Error("submission relay failed", fields...)

	return c.JSON(http.StatusInternalServerError, models.SubmissionResponse{
		Success: false,
		Message: i18n.Translate(lang, form+".error"),
	})
}
