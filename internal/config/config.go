// Package config reads runtime configuration from environment variables,
// falling back to sensible local-development defaults.
package config

import "os"

// Config holds the runtime settings for the reservation server.
type Config struct {
	// Addr is the listen address of the HTTP presentation adapter.
	Addr string
	// ReportPath is where the generated reservation report PDF is written.
	ReportPath string
}

// FromEnv builds a Config from well-known environment variables.
func FromEnv() Config {
	return Config{
		Addr:       getEnv("ADDR", ":8080"),
		ReportPath: getEnv("REPORT_PATH", "reporte_reservas.pdf"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
