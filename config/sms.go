package config

import "os"

// SMSConfig holds the SMS gateway credentials. SMS delivery is an optional
// integration: when the API key is absent the notify routes answer 503 and no
// outbound messages are attempted.
type SMSConfig struct {
	BaseURL    string
	APIKey     string
	UserID     string
	Sender     string
	AdminPhone string
}

// LoadSMSConfig reads the SMS gateway settings from the environment.
func LoadSMSConfig() SMSConfig {
	cfg := SMSConfig{
		BaseURL:    os.Getenv("SMS_API_BASE_URL"),
		APIKey:     os.Getenv("SMS_API_KEY"),
		UserID:     os.Getenv("SMS_USER_ID"),
		Sender:     os.Getenv("SMS_SENDER"),
		AdminPhone: os.Getenv("SMS_ADMIN_PHONE"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://apis.aligo.in"
	}
	return cfg
}

// Enabled reports whether the gateway is configured for outbound delivery.
func (c SMSConfig) Enabled() bool {
	return c.APIKey != "" && c.Sender != ""
}
