package services

import (
	"fmt"

	"purebiz_laundry_go/config"

	"go.uber.org/zap"
)

// NewMailer builds the transport selected by configuration. It is called once
// at startup; the result is shared by every request.
func NewMailer(cfg *config.Config, logger *zap.Logger) (Mailer, error) {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logger.Info("email test mode enabled, emails will be logged and not sent")
		return NewLogMailer(logger), nil
	}

	switch cfg.EmailProvider {
	case config.ProviderResend:
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY not configured")
		}
		return NewResendMailer(cfg.ResendAPIKey, cfg.FromAddress(), logger), nil
	case config.ProviderSMTP:
		return NewSMTPMailer(SMTPOptions{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			From:     cfg.EmailFrom,
			FromName: cfg.EmailFromName,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
}
