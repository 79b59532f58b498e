package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverNone  = "none"
	DriverLog   = "log"
	DriverKafka = "kafka"
	DriverNATS  = "nats"
)

// Config represents the ledger configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`  // zerolog level name, e.g. "debug"
		Format string `mapstructure:"format"` // "console" or "json"
	} `mapstructure:"log"`

	// Events controls where committed transactions are published
	Events struct {
		Driver     string `mapstructure:"driver"`      // none, log, kafka or nats
		Topic      string `mapstructure:"topic"`       // Kafka topic / NATS subject
		BufferSize int    `mapstructure:"buffer_size"` // dispatcher queue length
	} `mapstructure:"events"`

	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`

	NATS struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"nats"`
}

// Load reads configuration from, in increasing priority: defaults, the config
// file, and LEDGER_* environment variables. Variables from envFiles (".env"
// when none are given) are loaded into the environment first; a missing env
// file is not an error.
func Load(configFile string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	setDefaultConfig(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("ledger")
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file was found in the search path
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the values Load cannot type-check
func (c *Config) Validate() error {
	switch c.Events.Driver {
	case DriverNone, DriverLog:
	case DriverKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("events driver %q requires kafka.brokers", c.Events.Driver)
		}
	case DriverNATS:
		if c.NATS.URL == "" {
			return fmt.Errorf("events driver %q requires nats.url", c.Events.Driver)
		}
	default:
		return fmt.Errorf("unknown events driver %q", c.Events.Driver)
	}

	if c.Events.BufferSize <= 0 {
		return fmt.Errorf("events.buffer_size must be positive, got %d", c.Events.BufferSize)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("events.driver", DriverLog)
	v.SetDefault("events.topic", "transaction_committed")
	v.SetDefault("events.buffer_size", 1024)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
}
