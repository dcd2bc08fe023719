package mail

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"

	"saccoreg/internal/config"
	"saccoreg/internal/model"
)

// Mailer sends correction notifications over SMTP. A Mailer built without
// SMTP settings is disabled and every send is a no-op, so delivery can
// never affect the operation that triggered it.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
}

// New creates a Mailer from config; mail is disabled when SMTPHost is empty.
func New(cfg *config.Config) *Mailer {
	m := &Mailer{
		from:       cfg.MailFrom,
		adminEmail: cfg.AdminEmail,
	}
	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}
	return m
}

// Enabled reports whether the mailer has a configured SMTP transport.
func (m *Mailer) Enabled() bool {
	return m != nil && m.dialer != nil
}

// SendCorrectionNotice mails the admin inbox about a new correction request.
func (m *Mailer) SendCorrectionNotice(correction *model.CorrectionRequest) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New correction request for member %s", correction.MemberNumber))
	msg.SetBody("text/plain", fmt.Sprintf(
		"A correction request was submitted.\n\n"+
			"Member number: %s\n"+
			"Current name:  %s\n"+
			"Correct name:  %s\n"+
			"Current zone:  %s\n"+
			"Correct zone:  %s\n"+
			"Contact email: %s\n"+
			"Contact phone: %s\n"+
			"Notes: %s\n",
		correction.MemberNumber,
		correction.CurrentName, correction.CorrectName,
		correction.CurrentZone, correction.CorrectZone,
		correction.Email, correction.Phone,
		correction.AdditionalNotes,
	))

	return m.dialer.DialAndSend(msg)
}

// NotifyCorrectionAsync sends the notice in the background. Failures are
// logged and swallowed; the correction is already committed.
func (m *Mailer) NotifyCorrectionAsync(correction *model.CorrectionRequest) {
	if !m.Enabled() {
		return
	}
	go func() {
		if err := m.SendCorrectionNotice(correction); err != nil {
			log.Printf("correction notification failed for request %d: %v", correction.ID, err)
		}
	}()
}
