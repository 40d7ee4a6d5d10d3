package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/config"
)

// Notifier sends transactional mail over SMTP. Construct it only when SMTP is
// configured; a nil Notifier disables notifications entirely.
type Notifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewNotifier(cfg config.SMTPConfig) *Notifier {
	return &Notifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// LetterQueued tells a penpal profile owner that someone queued a letter for
// their address.
func (n *Notifier) LetterQueued(ownerEmail, recipientName, senderName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", ownerEmail)
	m.SetHeader("Subject", "You have a new letter on the way!")
	m.SetBody("text/plain", fmt.Sprintf(
		"%s just wrote a handwritten letter to %s. Keep an eye on your mailbox!",
		senderName, recipientName,
	))
	return n.dialer.DialAndSend(m)
}
