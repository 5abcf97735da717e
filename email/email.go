package email

import (
	"fmt"
	"html"
	"net/smtp"
	"os"

	"portfolio-backend/config"
	"portfolio-backend/model"

	"github.com/rs/zerolog/log"
)

// Service sends contact-form notifications over SMTP. When disabled it logs
// the submission instead, which is what you want in development.
type Service struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	notifyEmail  string
	enabled      bool
}

// NewService creates an email service. The SMTP password comes from the
// SMTP_PASSWORD environment variable so it never lands in config files.
func NewService(cfg config.EmailConfig) *Service {
	return &Service{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUsername: cfg.SMTPUsername,
		smtpPassword: os.Getenv("SMTP_PASSWORD"),
		fromEmail:    cfg.FromEmail,
		fromName:     cfg.FromName,
		notifyEmail:  cfg.NotifyEmail,
		enabled:      cfg.Enabled,
	}
}

// NotifyContact emails the portfolio owner about a new submission.
func (s *Service) NotifyContact(msg model.ContactMessage) error {
	if !s.enabled {
		log.Info().
			Str("id", msg.ID).
			Str("from", msg.Email).
			Str("subject", msg.Subject).
			Msg("Email service disabled - contact notification not sent")
		return nil
	}
	if s.notifyEmail == "" {
		log.Warn().Msg("Email service enabled but notify_email not configured")
		return nil
	}

	subject := fmt.Sprintf("New portfolio message: %s", msg.Subject)
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #3b82f6 0%%, #06b6d4 100%%); color: white; padding: 24px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #f9f9f9; padding: 24px; border-radius: 0 0 10px 10px; }
        .meta { font-size: 12px; color: #666; margin-top: 16px; }
        .message { background: white; padding: 16px; border-radius: 8px; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>New message from %s</h2></div>
        <div class="content">
            <p><strong>Email:</strong> %s</p>
            <p><strong>Subject:</strong> %s</p>
            <div class="message">%s</div>
            <p class="meta">ID: %s &middot; IP: %s &middot; %s</p>
        </div>
    </div>
</body>
</html>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
		msg.ID,
		msg.IP,
		msg.ReceivedAt.Format("2006-01-02 15:04:05 MST"),
	)

	return s.send(s.notifyEmail, subject, body)
}

func (s *Service) send(to, subject, htmlBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		from, to, subject)

	addr := s.smtpHost + ":" + s.smtpPort
	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, []byte(headers+htmlBody)); err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send email")
		return err
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent successfully")
	return nil
}
