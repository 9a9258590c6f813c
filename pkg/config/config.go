package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Slider       SliderConfig
	Janitor      JanitorConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"BAKEDBOUNTY_APP_ENV" required:"true"`
	Port         string `envconfig:"BAKEDBOUNTY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BAKEDBOUNTY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BAKEDBOUNTY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BAKEDBOUNTY_DB_DSN"`
	Driver string `envconfig:"BAKEDBOUNTY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BAKEDBOUNTY_DB_HOST"`
	LegacyPort     int    `envconfig:"BAKEDBOUNTY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BAKEDBOUNTY_DB_USER"`
	LegacyPassword string `envconfig:"BAKEDBOUNTY_DB_PASSWORD"`
	LegacyName     string `envconfig:"BAKEDBOUNTY_DB_NAME"`
	LegacySSLMode  string `envconfig:"BAKEDBOUNTY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BAKEDBOUNTY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BAKEDBOUNTY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BAKEDBOUNTY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BAKEDBOUNTY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the sqlite dialector should be used.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"BAKEDBOUNTY_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BAKEDBOUNTY_REDIS_ADDR"`
	Password     string        `envconfig:"BAKEDBOUNTY_REDIS_PASSWORD"`
	DB           int           `envconfig:"BAKEDBOUNTY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BAKEDBOUNTY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BAKEDBOUNTY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BAKEDBOUNTY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BAKEDBOUNTY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BAKEDBOUNTY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	// SubmitCooldown is the suppression window applied to repeated
	// add-to-cart commands for the same visitor/product pair.
	SubmitCooldown time.Duration `envconfig:"BAKEDBOUNTY_CART_SUBMIT_COOLDOWN" default:"1s"`
	// ToastTTL controls how long an added-to-cart notification stays
	// visible before it expires on its own.
	ToastTTL time.Duration `envconfig:"BAKEDBOUNTY_CART_TOAST_TTL" default:"3s"`
}

type SliderConfig struct {
	AutoAdvance    time.Duration `envconfig:"BAKEDBOUNTY_SLIDER_AUTO_ADVANCE" default:"4s"`
	SwipeThreshold int           `envconfig:"BAKEDBOUNTY_SLIDER_SWIPE_THRESHOLD" default:"50"`
}

type JanitorConfig struct {
	// SweepInterval is the cadence of background sweeps.
	SweepInterval time.Duration `envconfig:"BAKEDBOUNTY_JANITOR_SWEEP_INTERVAL" default:"24h"`
	// CartRetention is how long an untouched visitor cart survives
	// before the retention sweep removes it.
	CartRetention time.Duration `envconfig:"BAKEDBOUNTY_JANITOR_CART_RETENTION" default:"720h"`
	LockTTL       time.Duration `envconfig:"BAKEDBOUNTY_JANITOR_LOCK_TTL" default:"25h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"BAKEDBOUNTY_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"BAKEDBOUNTY_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required for the sqlite driver", EnvDBDSN)
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
