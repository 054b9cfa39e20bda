package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Every key can be set through
// the environment with dots replaced by underscores (db.dsn -> DB_DSN) or
// through a YAML file named by HIREHUB_CONFIG.
type Config struct {
	Env        string `mapstructure:"env"`
	Port       string `mapstructure:"port"`
	CORSOrigin string `mapstructure:"cors_origin"`

	DB        DBConfig        `mapstructure:"db"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Uploads   UploadsConfig   `mapstructure:"uploads"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Workflow  WorkflowConfig  `mapstructure:"workflow"`
	Reminders RemindersConfig `mapstructure:"reminders"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type UploadsConfig struct {
	Backend   string `mapstructure:"backend"`
	Dir       string `mapstructure:"dir"`
	GCSBucket string `mapstructure:"gcs_bucket"`
	GCSPrefix string `mapstructure:"gcs_prefix"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	From string `mapstructure:"from"`
}

type WorkflowConfig struct {
	// Strict enables application status transition checks.
	Strict bool `mapstructure:"strict"`
}

type RemindersConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Schedule string        `mapstructure:"schedule"`
	Window   time.Duration `mapstructure:"window"`
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

// SMTPEnabled reports whether outgoing mail is configured.
func (c *Config) SMTPEnabled() bool { return c.SMTP.User != "" && c.SMTP.Pass != "" }

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("port", "5001")
	v.SetDefault("cors_origin", "http://localhost:5173")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.dsn", "host=localhost user=postgres password=postgres dbname=hirehub port=5432 sslmode=disable")

	v.SetDefault("jwt.secret", "")

	v.SetDefault("uploads.backend", "local")
	v.SetDefault("uploads.dir", "uploads/resumes")
	v.SetDefault("uploads.gcs_bucket", "")
	v.SetDefault("uploads.gcs_prefix", "resumes")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "hirehub")

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.pass", "")
	v.SetDefault("smtp.from", "")

	v.SetDefault("workflow.strict", false)

	v.SetDefault("reminders.enabled", false)
	v.SetDefault("reminders.schedule", "@every 15m")
	v.SetDefault("reminders.window", "24h")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", "APP_ENV", "NODE_ENV")
	setDefaults(v)
	return v
}

// LoadConfig reads .env (if present), the optional YAML file and the
// environment, then validates the result.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := newViper()
	if path := v.GetString("hirehub_config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.DB.Driver {
	case "postgres", "sqlite":
	default:
		return errors.Newf("unsupported database driver %q", cfg.DB.Driver)
	}
	if cfg.JWT.Secret == "" {
		if cfg.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		cfg.JWT.Secret = "dev"
	}
	switch cfg.Uploads.Backend {
	case "local":
	case "gcs":
		if cfg.Uploads.GCSBucket == "" {
			return errors.New("UPLOADS_GCS_BUCKET is required when UPLOADS_BACKEND=gcs")
		}
	default:
		return errors.Newf("unsupported uploads backend %q", cfg.Uploads.Backend)
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}
	if cfg.Reminders.Window <= 0 {
		return errors.New("reminders.window must be positive")
	}
	if cfg.Reminders.Enabled && cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required when REMINDERS_ENABLED=true")
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	return nil
}
