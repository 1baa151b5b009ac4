package mail

import (
	"bytes"
	"context"
	"html/template"

	"github.com/tazhibayda/contact-service/internal/domain"
)

// Message is one outbound notification. The recipient is fixed by the
// mailer's configuration, not by the submitter.
type Message struct {
	FromName string
	Subject  string
	HTML     string
}

type Mailer interface {
	// Configured reports whether transport credentials are present.
	Configured() bool
	Send(ctx context.Context, m Message) error
}

// Submission text goes through html/template so whatever arrives in the
// form cannot inject markup into the notification.
var contactTmpl = template.Must(template.New("contact").Parse(`<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333; background-color: #f9f9f9; padding: 20px; border-radius: 8px;">
  <h2 style="color: #2c3e50;">New Contact Form Submission</h2>
  <p style="margin: 0 0 10px;"><strong>Name:</strong> {{.Name}}</p>
  <p style="margin: 0 0 10px;"><strong>Email:</strong> <a href="mailto:{{.Email}}" style="color: #3498db;">{{.Email}}</a></p>
  <p style="margin: 0 0 10px;"><strong>Subject:</strong> {{.Subject}}</p>
  <p style="margin: 10px 0 0;"><strong>Message:</strong></p>
  <div style="white-space: pre-line; background-color: #fff; padding: 15px; border-radius: 6px; border: 1px solid #ddd;">{{.Message}}</div>
  <hr style="margin: 30px 0;">
  <footer style="font-size: 12px; color: #777;">This message was sent via the contact form on your website.</footer>
</div>`))

// ContactNotification renders the owner-facing email for one submission.
func ContactNotification(c domain.Contact) (Message, error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, c); err != nil {
		return Message{}, err
	}
	return Message{
		FromName: c.Name + " via Website Contact Form",
		Subject:  "New Contact Inquiry: " + c.Subject,
		HTML:     buf.String(),
	}, nil
}
