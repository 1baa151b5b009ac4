package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPOptions carries transport settings. Port 465 means implicit TLS,
// which is what the defaults assume.
type SMTPOptions struct {
	Host         string
	Port         int
	User         string
	Pass         string
	Receiver     string
	ConnTimeout  time.Duration
	HelloTimeout time.Duration
	SendTimeout  time.Duration
	Debug        bool
}

// SMTPMailer sends notifications over authenticated SMTP. A fresh client is
// dialed per send; volume is a handful of mails a day, not worth pooling.
type SMTPMailer struct {
	opts SMTPOptions
}

func NewSMTPMailer(opts SMTPOptions) *SMTPMailer {
	return &SMTPMailer{opts: opts}
}

func (s *SMTPMailer) Configured() bool {
	return s.opts.User != "" && s.opts.Pass != ""
}

func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.FromName, s.opts.User); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(s.opts.Receiver); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, m.HTML)

	copts := []gomail.Option{
		gomail.WithPort(s.opts.Port),
		gomail.WithSSLPort(false),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.opts.User),
		gomail.WithPassword(s.opts.Pass),
		gomail.WithTimeout(s.opts.SendTimeout),
	}
	if s.opts.Debug {
		copts = append(copts, gomail.WithDebugLog())
	}
	client, err := gomail.NewClient(s.opts.Host, copts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	// Dial covers connect, greeting and auth; only a verified session gets
	// the message.
	dialCtx, cancel := context.WithTimeout(ctx, s.opts.ConnTimeout+s.opts.HelloTimeout)
	defer cancel()
	if err := client.DialWithContext(dialCtx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	if err := client.Send(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
