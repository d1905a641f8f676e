package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"referidos/config"
	"referidos/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMailerForTest(emailCfg *config.EmailConfig) service.Mailer {
	return NewHTTPMailer(MailerParams{
		Config: &config.Config{Email: emailCfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestHTTPMailer_SendsRenderedTemplate(t *testing.T) {
	var got mailRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mailer := newMailerForTest(&config.EmailConfig{
		Enabled:  true,
		Endpoint: server.URL,
		APIKey:   "test-key",
		From:     "noreply@daz.cl",
	})

	err := mailer.Send(context.Background(), "contacto@barberiacentral.cl", service.MailTemplateAprobacion, map[string]string{
		"nombre_encargado": "Camila",
		"nombre_local":     "Barbería Central",
		"codigo":           "AB12CD",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "noreply@daz.cl", got.From)
	assert.Equal(t, "contacto@barberiacentral.cl", got.To)
	assert.Contains(t, got.HTML, "Camila")
	assert.Contains(t, got.HTML, "AB12CD")
	assert.NotContains(t, got.HTML, "{{")
}

func TestHTTPMailer_DisabledDropsSend(t *testing.T) {
	mailer := newMailerForTest(&config.EmailConfig{Enabled: false})

	err := mailer.Send(context.Background(), "a@b.cl", service.MailTemplateRegistro, nil)
	assert.NoError(t, err)
}

func TestHTTPMailer_UnknownTemplate(t *testing.T) {
	mailer := newMailerForTest(&config.EmailConfig{Enabled: true})

	err := mailer.Send(context.Background(), "a@b.cl", "plantilla_inexistente", nil)
	assert.Error(t, err)
}

func TestHTTPMailer_APIErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	mailer := newMailerForTest(&config.EmailConfig{
		Enabled:  true,
		Endpoint: server.URL,
	})

	err := mailer.Send(context.Background(), "a@b.cl", service.MailTemplateActivacion, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
