package notify

import (
	"crypto/tls"
	"net/smtp"

	"hirehub/internal/config"

	"github.com/cockroachdb/errors"
)

// Sender delivers one plain-text message.
type Sender interface {
	Send(to, subject, body string) error
}

var sendMail = smtp.SendMail

// SMTPSender sends mail through an authenticated SMTP relay. Port 465
// falls back to implicit TLS when the STARTTLS attempt fails.
type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) message(to, subject, body string) []byte {
	return []byte("From: \"HireHub\" <" + s.cfg.From + ">\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body + "\r\n")
}

func (s *SMTPSender) Send(to, subject, body string) error {
	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	msg := s.message(to, subject, body)

	err := sendMail(addr, auth, s.cfg.From, []string{to}, msg)
	if err == nil {
		return nil
	}
	if s.cfg.Port != "465" {
		return errors.Wrap(err, "send mail")
	}
	return errors.Wrap(s.sendImplicitTLS(addr, auth, to, msg), "send mail over tls")
}

func (s *SMTPSender) sendImplicitTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return err
	}
	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	wc, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write(msg); err != nil {
		return err
	}
	return wc.Close()
}
