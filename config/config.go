package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/yeremiapane/restaurant-api/utils"
)

const cfgName = "application"

type Config struct {
	AppEnv        string        `mapstructure:"app_env"`
	Port          string        `mapstructure:"port"`
	GinMode       string        `mapstructure:"gin_mode"`
	DBDriver      string        `mapstructure:"db_driver"`
	DBDSN         string        `mapstructure:"db_dsn"`
	DBHost        string        `mapstructure:"db_host"`
	DBPort        string        `mapstructure:"db_port"`
	DBUser        string        `mapstructure:"db_user"`
	DBPassword    string        `mapstructure:"db_password"`
	DBName        string        `mapstructure:"db_name"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	JWTTTL        time.Duration `mapstructure:"jwt_ttl"`
	RateLimit     int           `mapstructure:"rate_limit"`
	RateInterval  time.Duration `mapstructure:"rate_interval"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFormat     string        `mapstructure:"log_format"`
	KafkaBrokers  string        `mapstructure:"kafka_brokers"`
	KafkaTopic    string        `mapstructure:"kafka_topic"`
	PublicBaseURL string        `mapstructure:"public_base_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "")
	v.SetDefault("db_user", "")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "restaurant")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_ttl", 24*time.Hour)
	v.SetDefault("rate_limit", 50)
	v.SetDefault("rate_interval", time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "restaurant.bills")
	v.SetDefault("public_base_url", "http://localhost:8080")
}

// Load reads .env, then an optional application.yml from . or ./config,
// then the environment. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debug("No .env file loaded")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(cfgName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		utils.InfoLogger.Infof("Using config file %s", v.ConfigFileUsed())
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AuthEnabled reports whether write routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
