package notification

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"
	"go.uber.org/zap"

	"github.com/openscholar/review-service/internal/config"
)

// Mailer is an SMTP-backed Notifier.
type Mailer struct {
	cfg    config.MailerConfig
	logger *zap.SugaredLogger
}

// NewMailer creates an SMTP notifier from configuration. When SMTP is not
// configured it returns a Nop notifier so call sites stay unconditional.
func NewMailer(cfg config.MailerConfig, logger *zap.SugaredLogger) Notifier {
	if !cfg.Enabled() {
		logger.Infow("SMTP not configured, notifications disabled")
		return Nop{}
	}
	return &Mailer{cfg: cfg, logger: logger}
}

// Notify sends one notification email.
func (m *Mailer) Notify(_ context.Context, recipient, kind string, data Data) error {
	if recipient == "" {
		return fmt.Errorf("notification recipient is empty")
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", renderSubject(kind, data))
	msg.SetBody("text/html", renderBody(kind, data))

	d := mail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         m.cfg.Host,
		InsecureSkipVerify: m.cfg.SkipTLSVerify, //nolint:gosec // development escape hatch
	}

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %s notification: %w", kind, err)
	}

	m.logger.Debugw("notification sent", "kind", kind, "recipient", recipient)
	return nil
}
