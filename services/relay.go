package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"

	"purebiz_laundry_go/models"
	"purebiz_laundry_go/services/i18n"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Stages a DispatchError can fail at
const (
	LegRender         = "render" // templating failed, nothing sent
	LegNotification   = "notification"
	LegAcknowledgment = "acknowledgment"
)

// ValidationError reports required fields that were empty (Fields) or
// present but malformed (Invalid). Nothing was sent.
type ValidationError struct {
	Fields  []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Fields) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Fields, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// DispatchError reports a failure to render or send the emails. When Leg is
// LegAcknowledgment the business notification was already sent.
type DispatchError struct {
	Leg string
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s email dispatch failed: %v", e.Leg, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// ContactEmailData is the template data for both contact emails
type ContactEmailData struct {
	models.ContactSubmission
	ServiceLabel string
	Hotline      string
}

// PickupEmailData is the template data for both pickup emails
type PickupEmailData struct {
	models.PickupSubmission
	ServiceLabel string
	VolumeLabel  string
	DateLabel    string
	TimeLabel    string
	Hotline      string
}

// Relay turns form submissions into a business notification followed by a
// customer acknowledgment. It keeps no state between submissions: the same
// payload sent twice is relayed twice.
type Relay struct {
	mailer        Mailer
	businessEmail string
	policy        *bluemonday.Policy
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewRelay(mailer Mailer, businessEmail string, logger *zap.Logger) *Relay {
	validate := validator.New()
	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Relay{
		mailer:        mailer,
		businessEmail: businessEmail,
		policy:        bluemonday.StrictPolicy(),
		validate:      validate,
		logger:        logger,
	}
}

// SubmitContact validates a contact submission and sends both emails.
// lang selects the language of the customer acknowledgment.
func (r *Relay) SubmitContact(ctx context.Context, sub models.ContactSubmission, lang string) error {
	sub.Normalize()
	if fields := sub.MissingFields(); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	if invalid := r.invalidFields(sub); len(invalid) > 0 {
		return &ValidationError{Invalid: invalid}
	}
	sub.Message = r.sanitize(sub.Message)

	data := ContactEmailData{
		ContactSubmission: sub,
		ServiceLabel:      ServiceTypeLabel(sub.ServiceType),
		Hotline:           Hotline,
	}

	notification, err := buildEmail("contact_notification", defaultTemplateLang, data, r.businessEmail)
	if err != nil {
		return &DispatchError{Leg: LegRender, Err: err}
	}
	notification.Subject = fmt.Sprintf("New Contact Form Submission from %s", sub.CompanyName)

	ack, err := buildEmail("contact_acknowledgment", lang, data, sub.Email)
	if err != nil {
		return &DispatchError{Leg: LegRender, Err: err}
	}
	ack.Subject = i18n.Translate(lang, "email.subject.contact_ack")

	return r.dispatch(ctx, notification, ack)
}

// SchedulePickup validates a pickup submission and sends both emails
func (r *Relay) SchedulePickup(ctx context.Context, sub models.PickupSubmission, lang string) error {
	sub.Normalize()
	if fields := sub.MissingFields(); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	if invalid := r.invalidFields(sub); len(invalid) > 0 {
		return &ValidationError{Invalid: invalid}
	}
	sub.SpecialInstructions = r.sanitize(sub.SpecialInstructions)

	data := PickupEmailData{
		PickupSubmission: sub,
		ServiceLabel:     ServiceTypeLabel(sub.ServiceType),
		VolumeLabel:      VolumeLabel(sub.EstimatedVolume),
		DateLabel:        FormatPickupDate(sub.PickupDate),
		TimeLabel:        FormatPickupTime(sub.PickupTime),
		Hotline:          Hotline,
	}

	notification, err := buildEmail("pickup_notification", defaultTemplateLang, data, r.businessEmail)
	if err != nil {
		return &DispatchError{Leg: LegRender, Err: err}
	}
	notification.Subject = fmt.Sprintf("New Pickup Request from %s", sub.CompanyName)
	if sub.UrgentPickup {
		notification.Subject = "URGENT: " + notification.Subject
	}

	ack, err := buildEmail("pickup_acknowledgment", lang, data, sub.Email)
	if err != nil {
		return &DispatchError{Leg: LegRender, Err: err}
	}
	ack.Subject = i18n.Translate(lang, "email.subject.pickup_ack")

	return r.dispatch(ctx, notification, ack)
}

// dispatch sends the notification, then the acknowledgment. No rollback: a
// failed acknowledgment leaves the notification delivered.
func (r *Relay) dispatch(ctx context.Context, notification, ack *Email) error {
	if err := r.mailer.Send(ctx, notification); err != nil {
		return &DispatchError{Leg: LegNotification, Err: err}
	}
	if err := r.mailer.Send(ctx, ack); err != nil {
		return &DispatchError{Leg: LegAcknowledgment, Err: err}
	}
	r.logger.Debug("submission relayed", zap.String("subject", notification.Subject))
	return nil
}

// invalidFields runs the struct's validate tags and returns the JSON names of
// the fields that failed
func (r *Relay) invalidFields(sub interface{}) []string {
	var verrs validator.ValidationErrors
	if err := r.validate.Struct(sub); !errors.As(err, &verrs) {
		return nil
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return names
}

// sanitize strips markup from free text. The policy output is entity-encoded;
// it is decoded again because the email templates do their own escaping.
func (r *Relay) sanitize(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(r.policy.Sanitize(s)))
}
