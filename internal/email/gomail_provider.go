package email

import (
	"fmt"

	"placement_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// GomailProvider delivers mail over SMTP.
type GomailProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewGomailProvider(cfg *config.Config) *GomailProvider {
	dialer := gomail.NewDialer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
	)
	from := fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromEmail)
	return &GomailProvider{dialer: dialer, from: from}
}

func (p *GomailProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = p.from
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}
	return p.dialer.DialAndSend(m)
}

func (p *GomailProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	body, err := Render(templateName, data)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: body,
	})
}

func (p *GomailProvider) Close() error {
	return nil
}
