package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	DB struct {
		Path string
	} `mapstructure:"db"`

	Remote struct {
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"remote"`

	Agent struct {
		TickInterval time.Duration `mapstructure:"tick_interval"`
		Notifier     string
	} `mapstructure:"agent"`

	Telegram struct {
		Token  string
		ChatID int64 `mapstructure:"chat_id"`
	} `mapstructure:"telegram"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Load reads configuration from the given file, falling back to defaults
// plus FRESHTRACK_* environment overrides when no file exists.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "Local")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.path", "freshtrack.db")
	v.SetDefault("remote.base_url", "http://localhost:8080")
	v.SetDefault("agent.tick_interval", time.Minute)
	v.SetDefault("agent.notifier", "log")
	v.SetDefault("metrics.enabled", false)

	v.SetEnvPrefix("FRESHTRACK")
	// Nested keys use dots; env vars use underscores (FRESHTRACK_HTTP_ADDR
	// overrides http.addr).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
