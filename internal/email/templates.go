package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names used by the services.
const (
	TemplateVerification       = "verification"
	TemplateApplicationStatus  = "application_status"
	TemplateInterviewScheduled = "interview_scheduled"
	TemplateNewJob             = "new_job"
	TemplateKYCVerdict         = "kyc_verdict"
)

var templates = map[string]*template.Template{
	TemplateVerification: template.Must(template.New(TemplateVerification).Parse(`
<h2>Welcome to {{.PortalName}}</h2>
<p>Hi {{.Name}},</p>
<p>Confirm your email address to activate your account:</p>
<p><a href="{{.VerifyURL}}">Verify email</a></p>
<p>If you did not register, ignore this message.</p>
`)),

	TemplateApplicationStatus: template.Must(template.New(TemplateApplicationStatus).Parse(`
<h2>Application update</h2>
<p>Hi {{.Name}},</p>
<p>Your application for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b> moved to <b>{{.Status}}</b>.</p>
{{if .Feedback}}<p>Feedback: {{.Feedback}}</p>{{end}}
`)),

	TemplateInterviewScheduled: template.Must(template.New(TemplateInterviewScheduled).Parse(`
<h2>Interview scheduled</h2>
<p>Hi {{.Name}},</p>
<p>Your interview for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b> is scheduled on <b>{{.Date}}</b> ({{.Mode}}).</p>
{{if .MeetingLink}}<p>Join: <a href="{{.MeetingLink}}">{{.MeetingLink}}</a></p>{{end}}
{{if .Location}}<p>Venue: {{.Location}}</p>{{end}}
`)),

	TemplateNewJob: template.Must(template.New(TemplateNewJob).Parse(`
<h2>New opening: {{.JobTitle}}</h2>
<p>Hi {{.Name}},</p>
<p><b>{{.CompanyName}}</b> is hiring for <b>{{.JobTitle}}</b> ({{.Tier}}).</p>
{{if .Deadline}}<p>Apply before {{.Deadline}}.</p>{{end}}
`)),

	TemplateKYCVerdict: template.Must(template.New(TemplateKYCVerdict).Parse(`
<h2>Profile verification</h2>
<p>Hi {{.Name}},</p>
<p>Your profile verification status is now <b>{{.Status}}</b>.</p>
{{if .Remark}}<p>Remark: {{.Remark}}</p>{{end}}
`)),
}

// Render executes the named template with the given data.
func Render(name string, data TemplateData) (string, error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
