package app

import "placement_backend/internal/email"

// MockEmailProvider is used by tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }
func (m *MockEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	return nil
}
func (m *MockEmailProvider) Close() error { return nil }
