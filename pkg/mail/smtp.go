package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/lateladelgol/storefront-backend/pkg/enums"
	"gopkg.in/gomail.v2"
)

var errSMTPConfigRequired = errors.New("smtp host, user and password are required")

// SMTPRelay delivers mail through the authenticated relay fallback.
type SMTPRelay struct {
	dialer *gomail.Dialer
}

// SMTPRelayParams configures the relay transport.
type SMTPRelayParams struct {
	Host     string
	Port     int
	User     string
	Password string

	// AllowSelfSigned disables certificate verification. Production
	// bootstrapping must never set it; NewSMTPRelay callers gate it on
	// the app environment.
	AllowSelfSigned bool
}

// NewSMTPRelay validates the relay configuration and builds the dialer.
func NewSMTPRelay(params SMTPRelayParams) (*SMTPRelay, error) {
	if params.Host == "" || params.User == "" || params.Password == "" {
		return nil, errSMTPConfigRequired
	}
	port := params.Port
	if port == 0 {
		port = 587
	}

	dialer := gomail.NewDialer(params.Host, port, params.User, params.Password)
	// Implicit TLS on the smtps port, STARTTLS otherwise.
	dialer.SSL = port == 465
	if params.AllowSelfSigned {
		dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: params.Host}
	}

	return &SMTPRelay{dialer: dialer}, nil
}

// Provider identifies this transport on audit records.
func (r *SMTPRelay) Provider() enums.MailProvider {
	return enums.MailProviderSMTP
}

// Send dials the relay and submits the message. gomail has no context
// support; the ctx is honored only before the dial starts.
func (r *SMTPRelay) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := r.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp relay send: %w", err)
	}
	return nil
}
