// Package mailer delivers the HTML notification emails the HR flows send:
// welcome credentials, pending-request alerts and password-change
// confirmations. Delivery is always best effort — callers run sends in the
// background and a failed send is logged, never surfaced to the user-facing
// operation.
package mailer

import (
	"fmt"
	"net/smtp"
	"time"

	"hrms-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// Mailer is the notification boundary consumed by the services
type Mailer interface {
	SendWelcome(to, employeeName, email, tempPassword, resetLink string) error
	SendRequestNotification(to, managerName, employeeName, employeeEmail, requestTypeName, description string, from, until time.Time) error
	SendPasswordUpdated(to, employeeName, userName string) error
}

// SMTPMailer sends through a plain SMTP relay
type SMTPMailer struct {
	cfg config.SMTPConfig
	log *logrus.Logger
}

// NewSMTPMailer returns a Mailer bound to the given SMTP configuration
func NewSMTPMailer(cfg config.SMTPConfig, log *logrus.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

func (m *SMTPMailer) SendWelcome(to, employeeName, email, tempPassword, resetLink string) error {
	body, err := renderWelcome(employeeName, email, tempPassword, resetLink)
	if err != nil {
		return err
	}
	return m.send(to, "Welcome to HRMS Portal - Your Login Credentials", body)
}

func (m *SMTPMailer) SendRequestNotification(to, managerName, employeeName, employeeEmail, requestTypeName, description string, from, until time.Time) error {
	body, err := renderRequestNotification(managerName, employeeName, employeeEmail, requestTypeName, description, from, until)
	if err != nil {
		return err
	}
	return m.send(to, "New Request Pending Approval", body)
}

func (m *SMTPMailer) SendPasswordUpdated(to, employeeName, userName string) error {
	body, err := renderPasswordUpdated(employeeName, to, userName)
	if err != nil {
		return err
	}
	return m.send(to, "Password Updated - HRMS Account", body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	msg := []byte("From: " + m.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		m.log.WithError(err).WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Error("failed to send email")
		return err
	}

	m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("email sent")
	return nil
}
