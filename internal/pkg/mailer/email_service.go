package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"oguso-digital-be/internal/config"
	"oguso-digital-be/internal/entity"
)

type IEmailService interface {
	SendVerificationOTP(toEmail, otp string) error
	SendPasswordReset(toEmail, resetURL string) error
	SendContactNotification(msg *entity.ContactMessage) error
}

type EmailService struct {
	cfg    *config.SMTPConfig
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.SMTPConfig) *EmailService {
	return &EmailService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password),
	}
}

func (s *EmailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Email, s.cfg.SenderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

func (s *EmailService) SendVerificationOTP(toEmail, otp string) error {
	body := fmt.Sprintf(`
		<h2>Verify your email</h2>
		<p>Your verification code is:</p>
		<h1 style="letter-spacing: 4px;">%s</h1>
		<p>The code expires in 15 minutes. If you did not create an account, ignore this email.</p>
	`, otp)
	return s.send(toEmail, "Verify your email", body)
}

func (s *EmailService) SendPasswordReset(toEmail, resetURL string) error {
	body := fmt.Sprintf(`
		<h2>Reset your password</h2>
		<p>Click the link below to choose a new password. The link expires in 1 hour.</p>
		<p><a href="%s">Reset password</a></p>
		<p>If you did not request this, you can safely ignore this email.</p>
	`, resetURL)
	return s.send(toEmail, "Reset your password", body)
}

func (s *EmailService) SendContactNotification(msg *entity.ContactMessage) error {
	if s.cfg.AdminEmail == "" {
		return nil
	}
	body := fmt.Sprintf(`
		<h2>New contact form submission</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Company:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
	`, msg.Name, msg.Email, msg.Company, msg.Message)
	return s.send(s.cfg.AdminEmail, "New contact form submission from "+msg.Name, body)
}
