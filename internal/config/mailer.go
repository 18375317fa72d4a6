package config

import "fmt"

// MailerConfig holds SMTP configuration for outgoing notifications.
type MailerConfig struct {
	// Host is the SMTP server host. Empty disables outgoing mail.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username is the SMTP auth username.
	Username string
	// Password is the SMTP auth password.
	Password string
	// From is the sender address, e.g. "Journal <no-reply@openscholar.org>".
	From string
	// SkipTLSVerify disables certificate verification. Development only.
	SkipTLSVerify bool
}

// LoadMailerConfigFromEnv loads SMTP configuration from environment variables.
func LoadMailerConfigFromEnv() MailerConfig {
	return MailerConfig{
		Host:          GetEnv("SMTP_HOST", ""),
		Port:          GetEnvInt("SMTP_PORT", 587),
		Username:      GetEnv("SMTP_USER", ""),
		Password:      GetEnv("SMTP_PASS", ""),
		From:          GetEnv("SMTP_FROM", ""),
		SkipTLSVerify: GetEnvBool("SMTP_SKIP_TLS_VERIFY", false),
	}
}

// Enabled reports whether outgoing mail is configured.
func (c MailerConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// Validate validates mailer configuration.
func (c MailerConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP_PORT: %d", c.Port)
	}
	return nil
}
