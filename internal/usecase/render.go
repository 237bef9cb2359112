package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/mail"
)

// submission carries the trimmed contact fields into the templates.
type submission struct {
	Name        string
	Email       string
	Phone       string
	ServiceType string
	Message     string
}

// notificationTemplate is the HTML template for the operator notification
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0a7d5f; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0a7d5f; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Service:</div>
                <div class="value">{{.ServiceType}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the SpiroLink website contact form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// confirmationTemplate is the HTML template for the submitter confirmation
const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>We Received Your Message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0a7d5f; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank You for Contacting SpiroLink</h1>
        </div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>We have received your message and our team will get back to you shortly.</p>
            <p>If your request is urgent, reply to this email and we will prioritize it.</p>
            <p>&mdash; The SpiroLink Team</p>
        </div>
        <div class="footer">
            <p>This is an automated confirmation from SpiroLink.</p>
        </div>
    </div>
</body>
</html>`

type notificationData struct {
	Name        string
	Email       string
	Phone       string
	ServiceType string
	Message     template.HTML
}

// nl2br escapes the text and converts newlines to <br> so multi-line
// messages keep their shape in the HTML body.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// renderNotification builds the operator-notification email. The subject
// carries the requested service; the submitter's address becomes Reply-To.
func renderNotification(from, operator string, sub submission) (mail.Message, error) {
	tmpl, err := template.New("notification").Parse(notificationTemplate)
	if err != nil {
		return mail.Message{}, fmt.Errorf("failed to parse notification template: %w", err)
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, notificationData{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       orNA(sub.Phone),
		ServiceType: orNA(sub.ServiceType),
		Message:     nl2br(sub.Message),
	})
	if err != nil {
		return mail.Message{}, fmt.Errorf("failed to execute notification template: %w", err)
	}

	serviceType := sub.ServiceType
	if serviceType == "" {
		serviceType = "General"
	}

	return mail.Message{
		From:    from,
		To:      operator,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New Service Inquiry: %s", serviceType),
		HTML:    body.String(),
	}, nil
}

// renderConfirmation builds the submitter-confirmation email.
func renderConfirmation(from string, sub submission) (mail.Message, error) {
	tmpl, err := template.New("confirmation").Parse(confirmationTemplate)
	if err != nil {
		return mail.Message{}, fmt.Errorf("failed to parse confirmation template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, struct{ Name string }{Name: sub.Name}); err != nil {
		return mail.Message{}, fmt.Errorf("failed to execute confirmation template: %w", err)
	}

	return mail.Message{
		From:    from,
		To:      sub.Email,
		Subject: "We received your message - SpiroLink",
		HTML:    body.String(),
	}, nil
}
