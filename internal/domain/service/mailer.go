package service

import "context"

// Mail templates used by the partner lifecycle notifications.
const (
	MailTemplateRegistro   = "socio_registro"
	MailTemplateAprobacion = "socio_aprobado"
	MailTemplateActivacion = "socio_activado"
)

// Mailer defines the interface for sending transactional emails.
type Mailer interface {
	// Send renders the named template with vars and delivers it to the recipient.
	Send(ctx context.Context, to string, template string, vars map[string]string) error
}
