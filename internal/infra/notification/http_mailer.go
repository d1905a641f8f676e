// Package notification implements the transactional mail dispatcher. Mails
// go out through a generic HTTP mail API; templates are defined here with
// simple {{var}} substitution, mirroring the lifecycle mails the partner
// panel has always sent.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"referidos/config"
	"referidos/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mailTemplate pairs a subject with an HTML body; both accept {{var}} markers.
type mailTemplate struct {
	subject string
	body    string
}

// Templates keyed by the names the partner directory dispatches.
var templates = map[string]mailTemplate{
	service.MailTemplateRegistro: {
		subject: "Recibimos tu solicitud de socio",
		body: "<p>Hola {{nombre_encargado}},</p>" +
			"<p>Recibimos la solicitud de <strong>{{nombre_local}}</strong> para unirse al programa de referidos. " +
			"Te avisaremos cuando sea revisada.</p>",
	},
	service.MailTemplateAprobacion: {
		subject: "¡Tu cuenta de socio fue aprobada!",
		body: "<p>Hola {{nombre_encargado}},</p>" +
			"<p>La cuenta de <strong>{{nombre_local}}</strong> fue aprobada. " +
			"Tu código de socio es <strong>{{codigo}}</strong>.</p>",
	},
	service.MailTemplateActivacion: {
		subject: "Tu cuenta de socio está activa",
		body: "<p>Hola {{nombre_encargado}},</p>" +
			"<p>La cuenta de <strong>{{nombre_local}}</strong> ya está activa: " +
			"tus clientes pueden descargar cupones con el código <strong>{{codigo}}</strong>.</p>",
	},
}

// httpMailer sends mail through an HTTP mail API endpoint.
type httpMailer struct {
	enabled    bool
	endpoint   string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

// MailerParams holds dependencies for the mailer, injected by Fx.
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewHTTPMailer creates the mail dispatcher. With email disabled in config
// the dispatcher logs and drops every send, which keeps development setups
// working without a mail account.
func NewHTTPMailer(params MailerParams) service.Mailer {
	mailer := &httpMailer{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: params.Logger,
	}

	if emailCfg := params.Config.Email; emailCfg != nil {
		mailer.enabled = emailCfg.Enabled
		mailer.endpoint = emailCfg.Endpoint
		mailer.apiKey = emailCfg.APIKey
		mailer.from = emailCfg.From
	}

	return mailer
}

type mailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send renders the named template with vars and delivers it to the recipient.
func (m *httpMailer) Send(ctx context.Context, to string, template string, vars map[string]string) error {
	tmpl, ok := templates[template]
	if !ok {
		return errors.Errorf("unknown mail template: %s", template)
	}

	if !m.enabled {
		m.logger.Info("email disabled, dropping send",
			slog.String("template", template),
			slog.String("to", to),
		)

		return nil
	}

	payload := mailRequest{
		From:    m.from,
		To:      to,
		Subject: render(tmpl.subject, vars),
		HTML:    render(tmpl.body, vars),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("mail API returned %d: %s", resp.StatusCode, string(respBody))
	}

	m.logger.Info("email sent",
		slog.String("template", template),
		slog.String("to", to),
	)

	return nil
}

// render replaces every {{key}} marker with its value.
func render(s string, vars map[string]string) string {
	for key, value := range vars {
		s = strings.ReplaceAll(s, "{{"+key+"}}", value)
	}

	return s
}
