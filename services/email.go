package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"strings"
	texttemplate "text/template"

	"purebiz_laundry_go/templates"

	"go.uber.org/zap"
)

const defaultTemplateLang = "en"

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Validate rejects messages that no transport could deliver
func (e *Email) Validate() error {
	if e == nil {
		return errors.New("email is nil")
	}
	if len(e.To) == 0 {
		return errors.New("email must have at least one recipient")
	}
	for _, to := range e.To {
		if strings.TrimSpace(to) == "" {
			return errors.New("email recipient must not be empty")
		}
	}
	if e.HTMLBody == "" && e.TextBody == "" {
		return errors.New("email must have either HTMLBody or TextBody")
	}
	return nil
}

// Mailer delivers a fully built Email. Implementations are safe for
// concurrent use and hold no per-message state.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}

// emailFS is swapped in tests
var emailFS fs.FS = templates.Emails

// buildEmail renders templateName for lang, falling back to the default
// language when no localized variant exists
func buildEmail(templateName, lang string, data interface{}, toEmail string) (*Email, error) {
	htmlBody, textBody, err := loadTemplate(templateName, lang, data)
	if err != nil && lang != defaultTemplateLang {
		htmlBody, textBody, err = loadTemplate(templateName, defaultTemplateLang, data)
	}
	if err != nil {
		return nil, err
	}

	return &Email{
		To: []string{toEmail},
		// Subject is set by caller
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// loadTemplate renders emails/<name>_<lang>.html and .txt, falling back to
// emails/<name>.html and .txt (the base language) when the localized file is missing.
// HTML bodies are escaped by html/template; text bodies are rendered verbatim.
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	read := func(ext string) (string, []byte, error) {
		// Try localized first
		p := path.Join("emails", fmt.Sprintf("%s_%s%s", templateName, lang, ext))
		content, err := fs.ReadFile(emailFS, p)
		if err != nil {
			p = path.Join("emails", templateName+ext)
			content, err = fs.ReadFile(emailFS, p)
			if err != nil {
				return "", nil, fmt.Errorf("failed to read template %s: %w", p, err)
			}
		}
		return p, content, nil
	}

	htmlPath, htmlSrc, err := read(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := htmltemplate.New(path.Base(htmlPath)).Option("missingkey=error").Parse(string(htmlSrc))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", htmlPath, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", htmlPath, err)
	}

	textPath, textSrc, err := read(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(path.Base(textPath)).Option("missingkey=error").Parse(string(textSrc))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", textPath, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", textPath, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// LogMailer logs emails instead of sending them (EMAIL_TEST_MODE)
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	m.logger.Info("email logged (test mode - not actually sent)",
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("text_body", email.TextBody),
		zap.String("html_body", truncate(email.HTMLBody, 500)),
	)
	return nil
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
