package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"
)

// SMTPSender sends emails through a mail account over implicit-TLS SMTP
// (port 465 style, e.g. a Gmail app password).
type SMTPSender struct {
	host        string
	port        string
	username    string
	password    string
	dialTimeout time.Duration
	sendTimeout time.Duration
}

// NewSMTPSender creates a new SMTP email sender for the given account.
func NewSMTPSender(host, port, username, password string) *SMTPSender {
	return &SMTPSender{
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		dialTimeout: 10 * time.Second,
		sendTimeout: 30 * time.Second,
	}
}

func (s *SMTPSender) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, s.port)

	dialer := &net.Dialer{Timeout: s.dialTimeout}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	// Implicit TLS for port 465
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return nil, fmt.Errorf("smtp: dial %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(s.sendTimeout))

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("smtp: handshake with %s: %w", s.host, err)
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("smtp: authenticate as %s: %w", s.username, err)
	}

	return client, nil
}

// Verify performs a one-time connectivity check: dial, handshake,
// authenticate, quit. It sends nothing.
func (s *SMTPSender) Verify(ctx context.Context) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	return client.Quit()
}

// Send sends an email through the account. The connection is opened and
// closed per call; timeouts bound both the dial and the full exchange.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Quit() }()

	if err := client.Mail(s.username); err != nil {
		return fmt.Errorf("smtp: MAIL FROM: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp: RCPT TO %s: %w", msg.To, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp: DATA: %w", err)
	}
	if _, err := w.Write(buildMIME(s.username, msg)); err != nil {
		return fmt.Errorf("smtp: write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp: finish message: %w", err)
	}

	return nil
}

// buildMIME constructs the raw HTML message. The account login is used as the
// envelope and header From; Gmail rewrites mismatched senders anyway.
func buildMIME(from string, msg Message) []byte {
	headers := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n",
		from, msg.To, msg.Subject,
	)
	if msg.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo)
	}
	headers += "MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n"

	return []byte(headers + msg.HTML)
}
