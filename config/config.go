package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Identity IdentityConfig `mapstructure:"identity"`
	Donation DonationConfig `mapstructure:"donation"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IdentityConfig configures optional donor identity. When Secret is empty
// every donation is anonymous; when set, a valid bearer token attaches a
// user id to intents. Full authentication lives outside this service.
type IdentityConfig struct {
	Secret string `mapstructure:"secret"`
}

// DonationConfig is the environment-driven payment surface: the global
// mode switch, per-provider hosted checkout URLs, per-provider webhook
// shared secrets, and bank transfer display details. No code change is
// needed to alter any of it.
type DonationConfig struct {
	Mode    string            `mapstructure:"mode"`    // "hosted" (default) or "api"
	URLs    map[string]string `mapstructure:"urls"`    // method -> hosted checkout URL
	Secrets map[string]string `mapstructure:"secrets"` // method -> webhook shared secret
	Bank    BankConfig        `mapstructure:"bank"`
}

// HostedURL returns the configured checkout URL for a method, "" if unset.
func (d DonationConfig) HostedURL(method string) string {
	return d.URLs[method]
}

// WebhookSecret returns the shared webhook secret for a method, "" if unset.
func (d DonationConfig) WebhookSecret(method string) string {
	return d.Secrets[method]
}

type BankConfig struct {
	BankName      string `mapstructure:"name"`
	AccountName   string `mapstructure:"account_name"`
	AccountNumber string `mapstructure:"account_number"`
	SwiftCode     string `mapstructure:"swift"`
	ReferenceNote string `mapstructure:"reference_note"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: DGW_ (Donation Gateway).
// Nested keys use underscore: DGW_DATABASE_HOST, DGW_DONATION_MODE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "donation_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("identity.secret", "")
	v.SetDefault("donation.mode", "hosted")
	v.SetDefault("donation.urls", map[string]string{})
	v.SetDefault("donation.secrets", map[string]string{})
	v.SetDefault("donation.bank.name", "")
	v.SetDefault("donation.bank.account_name", "")
	v.SetDefault("donation.bank.account_number", "")
	v.SetDefault("donation.bank.swift", "")
	v.SetDefault("donation.bank.reference_note", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: DGW_DONATION_MODE -> donation.mode
	v.SetEnvPrefix("DGW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
