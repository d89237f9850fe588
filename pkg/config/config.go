package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	HTTP    HTTPConfig
	Invoice InvoiceConfig
	PDF     PDFConfig
	Metrics MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InvoiceConfig comportamiento del formulario de factura.
type InvoiceConfig struct {
	StrictNumbers     bool          // true: números ilegibles se rechazan en vez de valer 0
	MaxSignatureBytes int64         // tamaño máximo de la imagen de firma
	SessionTTL        time.Duration // inactividad tras la cual se descarta un formulario
}

// PDFConfig textos fijos del encabezado del documento.
type PDFConfig struct {
	Title    string
	Subtitle string
}

// MetricsConfig prefijo de las métricas Prometheus.
type MetricsConfig struct {
	Namespace string
}

const (
	defaultMaxSignatureBytes = 2 << 20
	defaultSessionTTLMinutes = 120
)

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, INVOICE_STRICT_NUMBERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "invoice-builder"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Invoice: InvoiceConfig{
			StrictNumbers:     getBool(v, "INVOICE_STRICT_NUMBERS", false),
			MaxSignatureBytes: int64(getInt(v, "INVOICE_MAX_SIGNATURE_BYTES", defaultMaxSignatureBytes)),
			SessionTTL:        time.Duration(getInt(v, "INVOICE_SESSION_TTL_MINUTES", defaultSessionTTLMinutes)) * time.Minute,
		},
		PDF: PDFConfig{
			Title:    getString(v, "PDF_TITLE", "Tax Invoice/Bill of Supply/Cash Memo"),
			Subtitle: getString(v, "PDF_SUBTITLE", "(Original for Recipient)"),
		},
		Metrics: MetricsConfig{
			Namespace: getString(v, "METRICS_NAMESPACE", "invoice_builder"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if cfg.Invoice.MaxSignatureBytes <= 0 {
		return nil, fmt.Errorf("config: INVOICE_MAX_SIGNATURE_BYTES debe ser positivo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
