package mail

import (
	"context"

	"github.com/lateladelgol/storefront-backend/pkg/enums"
)

// Message is one outbound notification email, already rendered.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	HTML     string
}

// Sender delivers a rendered message through one concrete transport.
// Implementations return a nil error only on provider-acknowledged
// acceptance.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Provider() enums.MailProvider
}
