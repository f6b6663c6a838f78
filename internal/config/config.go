package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	TokenStorePostgres = "postgres"
	TokenStoreRedis    = "redis"
)

type Config struct {
	Env              string `yaml:"env" env:"APP_ENV" validate:"oneof=dev stage prod"`
	ShortTokenLength int    `yaml:"short_token_length" env:"SHORT_TOKEN_LENGTH" validate:"min=4,max=64"`
	TokenStore       string `yaml:"token_store" env:"TOKEN_STORE" validate:"oneof=postgres redis"`
	BcryptCost       int    `yaml:"bcrypt_cost" env:"BCRYPT_COST" validate:"min=4,max=31"`
	Log              Log    `yaml:"log"`
	HTTPServer       `yaml:"http_server"`
	Postgres         `yaml:"postgres"`
	Redis            Redis `yaml:"redis"`
	Seed             Seed  `yaml:"seed"`
}

type Log struct {
	Level   string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	JSON    bool   `yaml:"json" env:"LOG_JSON"`
	Concise bool   `yaml:"concise" env:"LOG_CONCISE"`
}

var defaultLog = Log{
	Level:   "info",
	Concise: true,
}

// SlogLevel returns the slog level matching Level, defaulting to info.
func (l *Log) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

type HTTPServer struct {
	Port           int           `yaml:"port" env:"HTTP_PORT" validate:"min=1,max=65535"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
	MaxHeaderBytes int           `yaml:"max_header_bytes" env:"HTTP_MAX_HEADER_BYTES"`
	CertFile       string        `yaml:"cert_file" env:"HTTP_CERT_FILE"`
	KeyFile        string        `yaml:"key_file" env:"HTTP_KEY_FILE"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Postgres struct {
	User            string        `yaml:"user" env:"POSTGRES_USER"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT"`
	DB              string        `yaml:"db" env:"POSTGRES_DB" validate:"required"`
	SSLMode         string        `yaml:"sslmode" env:"POSTGRES_SSLMODE"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"POSTGRES_CONN_MAX_IDLE_TIME"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"POSTGRES_CONN_MAX_LIFETIME"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"POSTGRES_MAX_IDLE_CONNS"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"POSTGRES_MAX_OPEN_CONNS"`
	MigrationsPath  string        `yaml:"migrations_path" env:"POSTGRES_MIGRATIONS_PATH"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
	MigrationsPath:  "file://migrations",
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

var defaultRedis = Redis{
	Addr: "localhost:6379",
}

// Seed describes the superuser created by the seed command.
type Seed struct {
	Name     string `yaml:"name" env:"SEED_NAME"`
	Email    string `yaml:"email" env:"SEED_EMAIL" validate:"omitempty,email"`
	Password string `yaml:"password" env:"SEED_PASSWORD" validate:"omitempty,max=72"`
}

var defaultSeed = Seed{
	Name:     "Super User",
	Email:    "superuser@example.com",
	Password: "superuserpassword",
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	var cfg Config
	setDefaults(&cfg)

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse environment: %w", op, err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: invalid config: %w", op, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.ShortTokenLength = 6
	cfg.TokenStore = TokenStorePostgres
	cfg.BcryptCost = 10
	cfg.Log = defaultLog
	cfg.HTTPServer = defaultHTTPServer
	cfg.Postgres = defaultPostgres
	cfg.Redis = defaultRedis
	cfg.Seed = defaultSeed
}
