package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-builder/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "invoice-builder", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Invoice.StrictNumbers)
	assert.Equal(t, int64(2<<20), cfg.Invoice.MaxSignatureBytes)
	assert.Equal(t, 120*time.Minute, cfg.Invoice.SessionTTL)
	assert.Equal(t, "Tax Invoice/Bill of Supply/Cash Memo", cfg.PDF.Title)
	assert.Equal(t, "(Original for Recipient)", cfg.PDF.Subtitle)
	assert.Equal(t, "invoice_builder", cfg.Metrics.Namespace)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INVOICE_STRICT_NUMBERS", "true")
	t.Setenv("INVOICE_MAX_SIGNATURE_BYTES", "1024")
	t.Setenv("INVOICE_SESSION_TTL_MINUTES", "5")
	t.Setenv("PDF_TITLE", "Invoice")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Invoice.StrictNumbers)
	assert.Equal(t, int64(1024), cfg.Invoice.MaxSignatureBytes)
	assert.Equal(t, 5*time.Minute, cfg.Invoice.SessionTTL)
	assert.Equal(t, "Invoice", cfg.PDF.Title)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_BooleanoIlegibleUsaDefecto(t *testing.T) {
	t.Setenv("INVOICE_STRICT_NUMBERS", "quizás")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.Invoice.StrictNumbers)
}
