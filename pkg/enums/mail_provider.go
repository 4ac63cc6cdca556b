package enums

// MailProvider names the transport that delivered (or tried to deliver)
// a notification email.
type MailProvider string

const (
	MailProviderSendgrid MailProvider = "sendgrid"
	MailProviderSMTP     MailProvider = "smtp"
)

// String implements fmt.Stringer.
func (p MailProvider) String() string {
	return string(p)
}
