package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	Mail  MailConfig
	Flags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STOREFRONT_DB_DSN"`
	Driver string `envconfig:"STOREFRONT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STOREFRONT_DB_HOST"`
	LegacyPort     int    `envconfig:"STOREFRONT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STOREFRONT_DB_USER"`
	LegacyPassword string `envconfig:"STOREFRONT_DB_PASSWORD"`
	LegacyName     string `envconfig:"STOREFRONT_DB_NAME"`
	LegacySSLMode  string `envconfig:"STOREFRONT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STOREFRONT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STOREFRONT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// MailConfig covers both the primary HTTP provider (SendGrid) and the
// SMTP relay fallback.
type MailConfig struct {
	SendgridAPIKey string `envconfig:"STOREFRONT_SENDGRID_API_KEY"`
	SendgridSender string `envconfig:"STOREFRONT_SENDGRID_SENDER"`

	OrderReceiver string `envconfig:"STOREFRONT_ORDER_RECEIVER_EMAIL"`
	ContactTo     string `envconfig:"STOREFRONT_CONTACT_TO"`
	ContactFrom   string `envconfig:"STOREFRONT_CONTACT_FROM" default:"no-reply@lateladelgol.com"`

	SMTPHost string `envconfig:"STOREFRONT_SMTP_HOST"`
	SMTPPort int    `envconfig:"STOREFRONT_SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"STOREFRONT_SMTP_USER"`
	SMTPPass string `envconfig:"STOREFRONT_SMTP_PASS"`

	// Honored only outside production.
	SMTPAllowSelfSigned bool `envconfig:"STOREFRONT_SMTP_ALLOW_SELF_SIGNED" default:"false"`
}

// SendgridConfigured reports whether the primary provider can be used.
func (m MailConfig) SendgridConfigured() bool {
	return strings.TrimSpace(m.SendgridAPIKey) != ""
}

// SMTPConfigured reports whether the relay fallback can be used.
func (m MailConfig) SMTPConfigured() bool {
	return m.SMTPHost != "" && m.SMTPUser != "" && m.SMTPPass != ""
}

// OrderReceiverAddress resolves the order destination, falling back to
// the SMTP account address.
func (m MailConfig) OrderReceiverAddress() string {
	if m.OrderReceiver != "" {
		return m.OrderReceiver
	}
	return m.SMTPUser
}

// ContactToAddress resolves the contact destination address.
func (m MailConfig) ContactToAddress() string {
	for _, candidate := range []string{m.ContactTo, m.OrderReceiver, m.SMTPUser} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// ContactFromAddress resolves the from-address for contact mail.
func (m MailConfig) ContactFromAddress() string {
	for _, candidate := range []string{m.ContactFrom, m.SMTPUser} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// SenderAddress resolves the from-address used by the primary provider
// on the order path.
func (m MailConfig) SenderAddress() string {
	for _, candidate := range []string{m.SendgridSender, m.SMTPUser, m.OrderReceiver} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"STOREFRONT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"STOREFRONT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
