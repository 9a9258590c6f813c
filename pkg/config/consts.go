package config

// EnvPrefix scopes every configuration variable read by envconfig.
const EnvPrefix = "BAKEDBOUNTY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

const (
	EnvAppEnv   = "BAKEDBOUNTY_APP_ENV"
	EnvPort     = "BAKEDBOUNTY_APP_PORT"
	EnvDBDSN    = "BAKEDBOUNTY_DB_DSN"
	EnvDBHost   = "BAKEDBOUNTY_DB_HOST"
	EnvDBUser   = "BAKEDBOUNTY_DB_USER"
	EnvDBName   = "BAKEDBOUNTY_DB_NAME"
	EnvRedisURL = "BAKEDBOUNTY_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
