package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/utils"
)

type MailerService interface {
	SendPasswordReset(toEmail, resetLink string) error
}

type mailerService struct {
	log      *logger.Logger
	host     string
	port     string
	username string
	password string
	from     string
}

// NewMailerService reads SMTP settings from the environment. With no
// SMTP_HOST configured the mailer logs the message instead of sending it,
// which keeps local development working without a relay.
func NewMailerService(log *logger.Logger) MailerService {
	serviceLog := log.With("service", "MailerService")
	return &mailerService{
		log:      serviceLog,
		host:     utils.GetEnv("SMTP_HOST", "", log),
		port:     utils.GetEnv("SMTP_PORT", "587", log),
		username: utils.GetEnv("SMTP_USERNAME", "", log),
		password: utils.GetEnv("SMTP_PASSWORD", "", log),
		from:     utils.GetEnv("SMTP_FROM", "no-reply@hlifeacademy.com", log),
	}
}

func (ms *mailerService) SendPasswordReset(toEmail, resetLink string) error {
	subject := "Redefinição de senha"
	body := fmt.Sprintf(
		"Olá,\r\n\r\nRecebemos um pedido para redefinir a sua senha. Acesse o link abaixo para criar uma nova senha. O link expira em 1 hora.\r\n\r\n%s\r\n\r\nSe você não pediu a redefinição, ignore este email.\r\n",
		resetLink,
	)

	if ms.host == "" {
		ms.log.Info("SMTP not configured, logging password reset instead", "to", toEmail, "link", resetLink)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + ms.from,
		"To: " + toEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := ms.host + ":" + ms.port
	var auth smtp.Auth
	if ms.username != "" {
		auth = smtp.PlainAuth("", ms.username, ms.password, ms.host)
	}
	if err := smtp.SendMail(addr, auth, ms.from, []string{toEmail}, []byte(msg)); err != nil {
		ms.log.Error("Failed to send password reset email", "to", toEmail, "error", err)
		return fmt.Errorf("Failed to send password reset email: %w", err)
	}
	return nil
}
