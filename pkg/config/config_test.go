package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaenox/sentimeter/internal/classifier"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 50, cfg.History.Capacity)
	assert.Equal(t, 10, cfg.History.RecentLimit)
	assert.Equal(t, classifier.DefaultLexicon(), cfg.Lexicon)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "http://localhost:8000", cfg.Stream.APIURL)
	assert.Equal(t, 4.0, cfg.Stream.TweetsPerMinute)
	assert.Equal(t, 30, cfg.Stream.MaxTweets)
	assert.Equal(t, 10*time.Second, cfg.Stream.RequestTimeout)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
history:
  capacity: 5
lexicon:
  positive: [yay]
  negative: [boo, meh]
stream:
  tweets_per_minute: 12
  request_timeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5, cfg.History.Capacity)
	assert.Equal(t, []string{"yay"}, cfg.Lexicon.Positive)
	assert.Equal(t, []string{"boo", "meh"}, cfg.Lexicon.Negative)
	assert.Equal(t, 12.0, cfg.Stream.TweetsPerMinute)
	assert.Equal(t, 2*time.Second, cfg.Stream.RequestTimeout)
}

func TestLoadConfig_FileKeepsMultiWordKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
lexicon:
  positive: ["good", "well done"]
  negative: ["not good", "hate"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"good", "well done"}, cfg.Lexicon.Positive)
	assert.Equal(t, []string{"not good", "hate"}, cfg.Lexicon.Negative)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SENTIMETER_SERVER_PORT", "8123")
	t.Setenv("SENTIMETER_HISTORY_RECENT_LIMIT", "3")
	t.Setenv("SENTIMETER_LEXICON_POSITIVE", "nice,really cool")
	t.Setenv("SENTIMETER_STREAM_API_URL", "http://api:8000")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, 3, cfg.History.RecentLimit)
	assert.Equal(t, []string{"nice", "really cool"}, cfg.Lexicon.Positive)
	assert.Equal(t, "http://api:8000", cfg.Stream.APIURL)
}

func TestLoadConfig_Flags(t *testing.T) {
	fs := pflag.NewFlagSet("stream", pflag.ContinueOnError)
	StreamFlags(fs)
	require.NoError(t, fs.Parse([]string{"--rate", "30", "--api-url", "http://other:1234", "--max-tweets", "5"}))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Stream.TweetsPerMinute)
	assert.Equal(t, "http://other:1234", cfg.Stream.APIURL)
	assert.Equal(t, 5, cfg.Stream.MaxTweets)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "zero capacity", env: "SENTIMETER_HISTORY_CAPACITY", val: "0"},
		{name: "negative rate", env: "SENTIMETER_STREAM_TWEETS_PER_MINUTE", val: "-1"},
		{name: "bad port", env: "SENTIMETER_SERVER_PORT", val: "70000"},
		{name: "bad log level", env: "SENTIMETER_LOG_LEVEL", val: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			_, err := LoadConfig("", nil)
			require.Error(t, err)
		})
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	logger, err := LogConfig{Level: "debug", Development: true}.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = LogConfig{Level: "nope"}.NewLogger()
	require.Error(t, err)
}
