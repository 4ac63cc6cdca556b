package config

// EnvPrefix namespaces every storefront environment variable.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "STOREFRONT_APP_ENV"
	EnvPort     = "STOREFRONT_APP_PORT"
	EnvDBDSN    = "STOREFRONT_DB_DSN"
	EnvDBHost   = "STOREFRONT_DB_HOST"
	EnvDBUser   = "STOREFRONT_DB_USER"
	EnvDBName   = "STOREFRONT_DB_NAME"
	EnvRedisURL = "STOREFRONT_REDIS_URL"

	EnvSendgridAPIKey = "STOREFRONT_SENDGRID_API_KEY"
	EnvSMTPHost       = "STOREFRONT_SMTP_HOST"
	EnvSMTPUser       = "STOREFRONT_SMTP_USER"
	EnvSMTPPass       = "STOREFRONT_SMTP_PASS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
