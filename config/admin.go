package config

import (
	"fmt"
	"os"
)

// AdminConfig holds the single shared admin identity and the secret used to
// sign session tokens. All three values are required at startup; the binary
// refuses to run with a missing credential rather than falling back to a
// default baked into the source.
type AdminConfig struct {
	Username   string
	Password   string
	SecretKey  string
	Production bool
}

// LoadAdminConfig reads ADMIN_USERNAME, ADMIN_PASSWORD and ADMIN_SECRET_KEY
// from the environment. APP_ENV=production marks cookies as Secure.
func LoadAdminConfig() (AdminConfig, error) {
	cfg := AdminConfig{
		Username:   os.Getenv("ADMIN_USERNAME"),
		Password:   os.Getenv("ADMIN_PASSWORD"),
		SecretKey:  os.Getenv("ADMIN_SECRET_KEY"),
		Production: os.Getenv("APP_ENV") == "production",
	}
	if cfg.Username == "" {
		return AdminConfig{}, fmt.Errorf("ADMIN_USERNAME must be set")
	}
	if cfg.Password == "" {
		return AdminConfig{}, fmt.Errorf("ADMIN_PASSWORD must be set")
	}
	if cfg.SecretKey == "" {
		return AdminConfig{}, fmt.Errorf("ADMIN_SECRET_KEY must be set")
	}
	return cfg, nil
}
