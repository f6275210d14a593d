package utils

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var mailConfig EmailConfig

// ConfigureMail sets the SMTP settings used for outgoing mail
func ConfigureMail(cfg EmailConfig) {
	mailConfig = cfg
}

// MailEnabled reports whether an SMTP host is configured
func MailEnabled() bool {
	return mailConfig.Host != ""
}

// BuildInviteEmail composes the notice sent to a new collaborator
func BuildInviteEmail(to, inviter, title string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", mailConfig.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s shared a wishlist with you", inviter))

	body := fmt.Sprintf(`
		<h2>You have been added to a wishlist</h2>
		<p><strong>%s</strong> invited you to collaborate on <strong>%s</strong>.</p>
		<p>Sign in to add your own ideas.</p>
	`, html.EscapeString(inviter), html.EscapeString(title))
	m.SetBody("text/html", body)
	return m
}

// SendInviteEmail notifies a user that they were added to a wishlist.
// Without SMTP configuration the notice is only logged.
func SendInviteEmail(to, inviter, title string) error {
	if !MailEnabled() {
		LogInfo("SMTP not configured, skipping invite notice to %s", to)
		return nil
	}

	m := BuildInviteEmail(to, inviter, title)
	d := gomail.NewDialer(mailConfig.Host, mailConfig.Port, mailConfig.Username, mailConfig.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
