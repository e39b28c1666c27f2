package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDev        = "dev"
	EnvTest       = "test"
	EnvProduction = "production"

	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv              string        `yaml:"app_env" env:"APP_ENV" env-default:"production"`
	AppPort             string        `yaml:"app_port" env:"APP_PORT" env-default:"8080"`
	DbDriver            string        `yaml:"db_driver" env:"DB_DRIVER" env-default:"mysql"`
	DbHost              string        `yaml:"db_host" env:"DB_HOST" env-default:"db"`
	DbPort              string        `yaml:"db_port" env:"DB_PORT"`
	DbUser              string        `yaml:"db_user" env:"DB_USER" env-default:"tasks"`
	DbPassword          string        `yaml:"db_password" env:"DB_PASSWORD" env-default:"tasks"`
	DbName              string        `yaml:"db_name" env:"DB_NAME" env-default:"tasks"`
	DbParams            string        `yaml:"db_params" env:"DB_PARAMS"`
	DbQueryTimeout      time.Duration `yaml:"db_query_timeout" env:"DB_QUERY_TIMEOUT" env-default:"5s"`
	DbMigrate           bool          `yaml:"db_migrate" env:"DB_MIGRATE" env-default:"true"`
	RelayTTL            time.Duration `yaml:"relay_ttl" env:"RELAY_TTL" env-default:"10m"`
	SessionCookieSecure bool          `yaml:"session_cookie_secure" env:"SESSION_COOKIE_SECURE" env-default:"false"`
	TranslationFolder   string        `yaml:"translation_folder" env:"TRANSLATION_FOLDER"`
	TrustedProxies      []string      `yaml:"trusted_proxies" env:"TRUSTED_PROXIES" env-separator:","`
}

// LoadConfig reads .env (if any) into the environment, then fills Config from
// the YAML file at CONFIG_PATH when set, or from the environment alone.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			var pe *os.PathError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("read config %q: %w", path, err)
			}
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, fmt.Errorf("read env: %w", err)
			}
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsTest() bool { return c.AppEnv == EnvTest }

func (c *Config) IsDev() bool { return c.AppEnv == EnvDev }

func (c *Config) normalize() {
	c.AppEnv = strings.ToLower(strings.TrimSpace(c.AppEnv))
	c.DbDriver = strings.ToLower(strings.TrimSpace(c.DbDriver))
	if c.DbPort == "" {
		c.DbPort = defaultPort(c.DbDriver)
	}
	c.TrustedProxies = parseTrustedProxies(c.TrustedProxies)
}

func (c *Config) validate() error {
	switch c.DbDriver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DbDriver)
	}
	if c.DbQueryTimeout <= 0 {
		return errors.New("DB_QUERY_TIMEOUT must be positive")
	}
	if c.RelayTTL <= 0 {
		return errors.New("RELAY_TTL must be positive")
	}
	return nil
}

func defaultPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

func parseTrustedProxies(values []string) []string {
	proxies := make([]string, 0, len(values))
	for _, value := range values {
		proxy := strings.TrimSpace(value)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
