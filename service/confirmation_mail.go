// Package service contains business logic shared between endpoints
package service

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailSender delivers confirmation codes. The SMTP implementation is
// swapped out for a logging one when mail.enabled is false (dev, tests).
type MailSender interface {
	SendConfirmationCode(to, username, code string) error
}

// NewMailSender picks the sender matching the current config.
func NewMailSender() MailSender {
	if viper.GetBool("mail.enabled") {
		return &SMTPMailer{}
	}
	return &LogMailer{}
}

type SMTPMailer struct{}

func (s *SMTPMailer) SendConfirmationCode(to, username, code string) error {
	from := viper.GetString("mail.sender")
	if to == from {
		return fmt.Errorf("invalid email address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your confirmation code")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %v,\n\nYour confirmation code: %v\n\nExchange it for a session token at /api/auth/token.", username, code))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}

// LogMailer writes the code to the log instead of delivering it.
type LogMailer struct{}

func (l *LogMailer) SendConfirmationCode(to, username, code string) error {
	zap.L().Info("Mail delivery disabled, confirmation code not sent",
		zap.String("to", to),
		zap.String("username", username),
		zap.String("code", code),
	)
	return nil
}
