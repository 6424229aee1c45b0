package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendVerificationEmail(email, code string, ttlMinutes int) error
	SendRecoveryEmail(email, code string, ttlMinutes int) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) send(email, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendVerificationEmail(email, code string, ttlMinutes int) error {
	body := fmt.Sprintf(`
		<h2>Email Verification</h2>
		<p>Your verification code is:</p>
		<p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">%s</p>
		<p>This code expires in %d minutes.</p>
		<p>If you didn't request this, ignore this email.</p>
	`, code, ttlMinutes)

	return s.send(email, "Your Email Verification Code", body)
}

func (s *emailService) SendRecoveryEmail(email, code string, ttlMinutes int) error {
	body := fmt.Sprintf(`
		<h2>Password Recovery</h2>
		<p>We received a request to reset the password for your account.</p>
		<p>Use the following code to reset your password:</p>
		<p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">%s</p>
		<p>This code expires in %d minutes.</p>
		<p>If you didn't request this, ignore this email.</p>
	`, code, ttlMinutes)

	return s.send(email, "Password Recovery Code", body)
}
