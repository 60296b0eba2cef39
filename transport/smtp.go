package transport

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTP relays the message body to a recipient over a STARTTLS session.
type SMTP struct {
	Addr     string // host:port
	Username string
	Password string
	From     string
	To       string
}

func NewSMTP(addr, username, password, from, to string) *SMTP {
	return &SMTP{Addr: addr, Username: username, Password: password, From: from, To: to}
}

func (s *SMTP) Name() string { return "smtp" }

func (s *SMTP) Send(_ context.Context, filename string, payload []byte) error {
	host := s.Addr
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	auth := smtp.PlainAuth("", s.Username, s.Password, host)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.From)
	fmt.Fprintf(&msg, "To: %s\r\n", s.To)
	fmt.Fprintf(&msg, "Subject: SWIFT message %s\r\n", filename)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.Write(payload)

	if err := smtp.SendMail(s.Addr, auth, s.From, []string{s.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
