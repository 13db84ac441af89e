package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xaenox/sentimeter/internal/classifier"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "SENTIMETER"

type Config struct {
	Server  ServerConfig       `mapstructure:"server"`
	History HistoryConfig      `mapstructure:"history"`
	Lexicon classifier.Lexicon `mapstructure:"lexicon"`
	Log     LogConfig          `mapstructure:"log"`
	Stream  StreamConfig       `mapstructure:"stream"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type HistoryConfig struct {
	Capacity    int `mapstructure:"capacity"`
	RecentLimit int `mapstructure:"recent_limit"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type StreamConfig struct {
	APIURL          string        `mapstructure:"api_url"`
	TweetsPerMinute float64       `mapstructure:"tweets_per_minute"`
	MaxTweets       int           `mapstructure:"max_tweets"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

func setDefaults(v *viper.Viper) {
	lexicon := classifier.DefaultLexicon()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("history.capacity", 50)
	v.SetDefault("history.recent_limit", 10)
	v.SetDefault("lexicon.positive", lexicon.Positive)
	v.SetDefault("lexicon.negative", lexicon.Negative)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("stream.api_url", "http://localhost:8000")
	v.SetDefault("stream.tweets_per_minute", 4)
	v.SetDefault("stream.max_tweets", 30)
	v.SetDefault("stream.request_timeout", 10*time.Second)
}

// LoadConfig reads defaults, an optional config file, SENTIMETER_* environment
// variables and, if flags is non-nil, command-line flags. Flags are bound by
// name to the keys listed in flagKeys. Keyword lists given through the
// environment are comma-separated; entries may contain spaces.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Enable environment variable support
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"host":       "server.host",
	"port":       "server.port",
	"log-level":  "log.level",
	"api-url":    "stream.api_url",
	"rate":       "stream.tweets_per_minute",
	"max-tweets": "stream.max_tweets",
}

// ServerFlags registers the flags understood by the scoring service.
func ServerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("host", "0.0.0.0", "listen host")
	fs.Int("port", 8000, "listen port")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
}

// StreamFlags registers the flags understood by the replay driver.
func StreamFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("api-url", "http://localhost:8000", "base URL of the sentiment API")
	fs.Float64("rate", 4, "tweets sent per minute")
	fs.Int("max-tweets", 30, "stop after this many successfully processed tweets")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.History.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("history.capacity must be positive, got %d", c.History.Capacity))
	}
	if c.History.RecentLimit <= 0 {
		errs = append(errs, fmt.Errorf("history.recent_limit must be positive, got %d", c.History.RecentLimit))
	}
	if c.Stream.TweetsPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("stream.tweets_per_minute must be positive, got %v", c.Stream.TweetsPerMinute))
	}
	if c.Stream.MaxTweets <= 0 {
		errs = append(errs, fmt.Errorf("stream.max_tweets must be positive, got %d", c.Stream.MaxTweets))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// NewLogger builds the zap logger described by the log section.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
