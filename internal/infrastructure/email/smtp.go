// Package email sends calendar invitation notifications over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"norte/internal/domain/calendar"
	"norte/internal/domain/user"
	"norte/internal/shared/config"
	"norte/internal/shared/logger"
)

// InvitationMailer resolves the recipient address and sends the invitation.
// Satisfies the calendar use cases' mailer port.
type InvitationMailer struct {
	cfg      *config.EmailConfig
	dialer   *gomail.Dialer
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewInvitationMailer(cfg *config.EmailConfig, userRepo user.UserRepository, log logger.Interface) *InvitationMailer {
	return &InvitationMailer{
		cfg:      cfg,
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		userRepo: userRepo,
		logger:   log,
	}
}

func (m *InvitationMailer) SendInvitation(ctx context.Context, userID uint, event *calendar.Event) error {
	if m.cfg.Host == "" {
		m.logger.Debugw("smtp not configured, skipping invitation email", "user_id", userID)
		return nil
	}

	recipient, err := m.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up invitation recipient: %w", err)
	}
	if recipient == nil {
		return fmt.Errorf("invitation recipient %d not found", userID)
	}

	eventURL := fmt.Sprintf("%s/calendar?event=%d", m.cfg.BaseURL, event.ID())
	when := event.StartTime().Format("02/01/2006 15:04")

	subject := fmt.Sprintf("Invitación: %s", event.Title())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Te invitaron a un evento</h2>
			<p><strong>%s</strong></p>
			<p>Fecha: %s</p>
			<p>Puedes aceptar o rechazar la invitación desde el calendario:</p>
			<p><a href="%s">Ver evento</a></p>
		</body>
		</html>
	`, event.Title(), when, eventURL)
	plainBody := fmt.Sprintf("Te invitaron al evento %q el %s.\nResponde la invitación en: %s\n",
		event.Title(), when, eventURL)

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.FromAddress, m.cfg.FromName))
	msg.SetHeader("To", recipient.Email())
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	m.logger.Infow("invitation email sent", "user_id", userID, "event_id", event.ID())
	return nil
}
