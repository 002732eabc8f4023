package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/glowmate/api/pkg/config"
)

// Notifier delivers transactional email. Delivery is best-effort: the
// services log failures and never surface them as request errors.
type Notifier interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendWaitlistVerificationEmail(to, token string) error
}

type SMTPClient struct {
	Host        string
	User        string
	Password    string
	From        string
	BaseURL     string
	FrontendURL string
}

func NewSMTPClient(smtpc config.SMTP, appc config.App) *SMTPClient {
	return &SMTPClient{
		Host:        smtpc.Host,
		User:        smtpc.User,
		Password:    smtpc.Pass,
		From:        smtpc.From,
		BaseURL:     appc.BaseURL,
		FrontendURL: appc.FrontendURL,
	}
}

func (s *SMTPClient) SendVerificationEmail(to, token string) error {
	url := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", s.BaseURL, token)
	body := fmt.Sprintf("Welcome to GlowMate!\n\nPlease open the link below to verify your email address and activate your account.\n\n%s\n\nIf you didn't create an account, you can safely ignore this email.", url)
	return s.send(to, "Verify your GlowMate Account", body)
}

func (s *SMTPClient) SendPasswordResetEmail(to, token string) error {
	url := fmt.Sprintf("%s/auth/reset-password?token=%s", s.FrontendURL, token)
	body := fmt.Sprintf("You requested a password reset. Open the link below to reset it.\n\n%s\n\nThis link expires in one hour.", url)
	return s.send(to, "Reset your GlowMate Password", body)
}

func (s *SMTPClient) SendWaitlistVerificationEmail(to, token string) error {
	url := fmt.Sprintf("%s/verify-waitlist?token=%s", s.FrontendURL, token)
	body := fmt.Sprintf("Thanks for joining the GlowMate waitlist. Please verify your email to secure your position.\n\n%s", url)
	return s.send(to, "Verify your Spot on GlowMate Waitlist", body)
}

func (s *SMTPClient) send(to, subject, body string) error {
	if s == nil || s.Host == "" || s.User == "" {
		return fmt.Errorf("smtp not configured")
	}
	addr := fmt.Sprintf("%s:%d", s.Host, 587)
	auth := smtp.PlainAuth("", s.User, s.Password, s.Host)
	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" + body + "\r\n")
	return smtp.SendMail(addr, auth, s.From, []string{to}, msg)
}
