package mail

import (
	"context"
	"log/slog"
	"time"
)

// LoggingMailer writes recovery codes to the log instead of sending mail.
// It backs local development when no SMTP host is configured and must never
// be wired in production: the code appears in plain text in the log output.
type LoggingMailer struct {
	logger *slog.Logger
}

// NewLoggingMailer creates the log-only mailer.
func NewLoggingMailer(logger *slog.Logger) *LoggingMailer {
	return &LoggingMailer{logger: logger}
}

func (m *LoggingMailer) SendRecoveryCode(_ context.Context, to, code string, expiresAt time.Time) error {
	m.logger.Info("recovery code issued (log-only mail delivery)",
		"to", to,
		"code", code,
		"expires_at", expiresAt.UTC().Format(time.RFC3339),
	)
	return nil
}
