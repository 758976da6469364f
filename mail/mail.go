// Package mail delivers generated documents to the teacher by SMTP.
package mail

import (
	"fmt"

	"github.com/go-gomail/gomail"
)

// SMTP holds the server settings used to send mail.
type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Config describes where generated documents are sent. It usually lives
// in the class file next to the roster.
type Config struct {
	SMTP SMTP   `yaml:"smtp"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Send mails the given files as attachments.
func Send(cfg *Config, subject, body string, attachments ...string) error {
	if cfg == nil {
		return fmt.Errorf("mail: no mail configuration")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.From)
	msg.SetHeader("To", cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	for _, f := range attachments {
		msg.Attach(f)
	}

	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: sending to %s: %w", cfg.To, err)
	}
	return nil
}
