package email

// Provider sends portal mail. Callers treat delivery as best effort: a failed
// send is logged and never fails the request that triggered it.
type Provider interface {
	Send(email *Email) error
	SendTemplate(to []string, subject, templateName string, data TemplateData) error
	Close() error
}
