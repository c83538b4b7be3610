package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Store struct {
	DSN          string `mapstructure:"dsn" validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type Report struct {
	// Hard ceiling on row-list reports to bound memory on wide ranges.
	RowLimit int `mapstructure:"row_limit"`
}

type Kafka struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type Identity struct {
	UserID string `mapstructure:"user_id"`
	Role   string `mapstructure:"role"`
}

type Auth struct {
	// Bearer token -> identity, for standalone runs without the console's
	// session service.
	Tokens map[string]Identity `mapstructure:"tokens"`
}

type Config struct {
	Server Server `mapstructure:"server"`
	Store  Store  `mapstructure:"store"`
	Report Report `mapstructure:"report"`
	Kafka  Kafka  `mapstructure:"kafka"`
	Auth   Auth   `mapstructure:"auth"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("report.row_limit", 10000)
	v.SetDefault("kafka.topic", "report_exported")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
