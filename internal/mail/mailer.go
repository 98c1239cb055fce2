package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"

	"github.com/jordan-wright/email"

	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/model"
)

// SMTPConfig holds outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var _ model.EmailSender = (*Mailer)(nil)

// Mailer renders templated emails and sends them over SMTP.
type Mailer struct {
	cfg     SMTPConfig
	storage model.Storage
	deliver func(e *email.Email) error
	logger  *logger.Logger
}

// NewMailer creates a Mailer. storage may be nil, in which case only the
// embedded templates are used.
func NewMailer(cfg SMTPConfig, storage model.Storage, logger *logger.Logger) *Mailer {
	m := &Mailer{
		cfg:     cfg,
		storage: storage,
		logger:  logger,
	}
	m.deliver = m.sendSMTP
	return m
}

// Send renders subject in language with data and delivers it to to.
func (m *Mailer) Send(ctx context.Context, to string, subject model.EmailSubject, language string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := m.render(ctx, language, subject, data)
	if err != nil {
		return err
	}

	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{to}
	e.Subject = subjectLine(language, subject)
	e.HTML = body

	if err := m.deliver(e); err != nil {
		return fmt.Errorf("failed to send %s email: %w", subject, err)
	}

	m.logger.Debug("Mailer: email sent",
		"subject", string(subject),
		"language", language)

	return nil
}

func (m *Mailer) render(ctx context.Context, language string, subject model.EmailSubject, data map[string]any) ([]byte, error) {
	raw, err := m.loadTemplate(ctx, language, subject)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(string(subject)).Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", subject, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", subject, err)
	}
	return buf.Bytes(), nil
}

func (m *Mailer) sendSMTP(e *email.Email) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	return e.Send(addr, auth)
}
