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
	App    AppConfig
	Log    LogConfig
	Source SourceConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string // trace, debug, info, warn, error, disabled
}

// SourceConfig origen de los DTE cargados.
type SourceConfig struct {
	Dir string // directorio con archivos .json
}

// ReportConfig opciones de los reportes exportados.
type ReportConfig struct {
	Format         string // pdf | xlsx
	OutputDir      string
	Language       string // etiqueta BCP-47: es, es-SV, en...
	Timezone       string // zona para la fecha de generación del reporte
	CurrencySymbol string
	Striped        bool // filas con fondo alterno
}

// Location resuelve la zona horaria configurada. Si la base de zonas no está
// disponible se usa UTC-6 (El Salvador no aplica horario de verano).
func (c ReportConfig) Location() *time.Location {
	if c.Timezone != "" {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone("CST", -6*60*60)
}

// Validate comprueba valores enumerados.
func (c ReportConfig) Validate() error {
	switch c.Format {
	case "pdf", "xlsx":
		return nil
	default:
		return fmt.Errorf("config: REPORT_FORMAT %q no soportado (pdf | xlsx)", c.Format)
	}
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, DTE_SOURCE_DIR, REPORT_FORMAT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "dte-compras"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Source: SourceConfig{
			Dir: getString(v, "DTE_SOURCE_DIR", "./dte"),
		},
		Report: ReportConfig{
			Format:         strings.ToLower(getString(v, "REPORT_FORMAT", "pdf")),
			OutputDir:      getString(v, "REPORT_OUTPUT_DIR", "."),
			Language:       getString(v, "REPORT_LANGUAGE", "es-SV"),
			Timezone:       getString(v, "REPORT_TIMEZONE", "America/El_Salvador"),
			CurrencySymbol: getString(v, "REPORT_CURRENCY_SYMBOL", "$"),
			Striped:        getBool(v, "REPORT_STRIPED", true),
		},
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return def
}

// getBool interpreta "1", "true", "false", etc.; valores ilegibles usan el default.
func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(v.GetString(key))
	if err != nil {
		return def
	}
	return b
}
