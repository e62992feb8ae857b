package notifier

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers credential notifications directly over SMTP with a fixed
// sender identity.
type Mailer struct {
	host     string
	port     int
	sender   string
	password string
}

// NewMailer creates a new Mailer.
func NewMailer(host string, port int, sender, password string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
	}
}

// AccountCreated sends the unique ID to the account owner in plain text.
func (m *Mailer) AccountCreated(event Event) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", event.Email)
	msg.SetHeader("Subject", "Your Bank Account Unique ID")
	msg.SetBody("text/plain", MessageBody(event))

	dialer := gomail.NewDialer(m.host, m.port, m.sender, m.password)
	dialer.SSL = m.port == 465

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send credential email to %s: %w", event.Email, err)
	}
	return nil
}

// MessageBody renders the notification text. The unique ID doubles as the
// login credential, so the message tells the owner to keep it secret.
func MessageBody(event Event) string {
	return fmt.Sprintf(`Dear %s,

Your account has been created successfully.

Your Unique Login ID: %s
Initial Balance: %d

Please keep this Unique ID secure. It acts as your login credential.

Thank you!
`, event.Username, event.UniqueID, event.Balance)
}
