package model

import "context"

// EmailSubject identifies an email template.
type EmailSubject string

const (
	EmailSubjectConfirmation            EmailSubject = "EMAIL_CONFIRMATION"
	EmailSubjectResetPassword           EmailSubject = "RESET_PASSWORD"
	EmailSubjectSuccessfulPasswordReset EmailSubject = "SUCCESSFUL_PASSWORD_RESET"
)

// EmailSender delivers templated emails.
type EmailSender interface {
	Send(ctx context.Context, to string, subject EmailSubject, language string, data map[string]any) error
}
