package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "header": {"seller_name": "Acme Traders", "invoice_number": "INV-5", "reverse_charge": false},
  "items": [
    {"description": "Widget", "unit_price": 100, "quantity": 2, "discount_percent": 10},
    {"description": "Gadget", "unit_price": "50"}
  ]
}`

func writeInput(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "factura.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestRun_PDFPorDefecto(t *testing.T) {
	in := writeInput(t, sampleJSON)
	var stdout bytes.Buffer

	require.NoError(t, run([]string{in}, &stdout))

	out := filepath.Join(filepath.Dir(in), "invoice_INV-5.pdf")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Contains(t, stdout.String(), "total Rs. 271.40")
	assert.Contains(t, stdout.String(), "two hundred seventy-one rupees and forty paise")
}

func TestRun_XLSX(t *testing.T) {
	in := writeInput(t, sampleJSON)
	out := filepath.Join(t.TempDir(), "lineas.xlsx")

	require.NoError(t, run([]string{in, out}, &bytes.Buffer{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestRun_FirmaNoPermitida(t *testing.T) {
	in := writeInput(t, `{"signature": "firma.gif"}`)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(in), "firma.gif"), []byte("GIF89a"), 0o644))

	err := run([]string{in}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, "Please upload an image file (PNG, JPG, or JPEG)", err.Error())
}

func TestRun_Argumentos(t *testing.T) {
	assert.Error(t, run(nil, &bytes.Buffer{}))
	assert.Error(t, run([]string{"a", "b", "c"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{filepath.Join(t.TempDir(), "no-existe.json")}, &bytes.Buffer{}))
}
