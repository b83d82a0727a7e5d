package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Cron      CronConfig      `mapstructure:"cron"`
	Statement StatementConfig `mapstructure:"statement"`
	Stream    StreamConfig    `mapstructure:"stream"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

// AuthConfig controls the gateway-trust middleware. The service expects an
// identity-aware proxy in front of it to set UserHeader on every request.
type AuthConfig struct {
	Disabled   bool   `mapstructure:"disabled"`
	UserHeader string `mapstructure:"user_header"`
	DevUserID  string `mapstructure:"dev_user_id"`
}

type CronConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	EquitySnapshot string `mapstructure:"equity_snapshot"`
}

// StatementConfig carries the default statement targets; a request may
// override any of them. Values are percentages of month starting capital.
type StatementConfig struct {
	MaxLossPct float64 `mapstructure:"max_loss_pct"`
	ObjWeekPct float64 `mapstructure:"obj_week_pct"`
	ObjDayPct  float64 `mapstructure:"obj_day_pct"`
}

type StreamConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	BufferedSends int           `mapstructure:"buffered_sends"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("auth.disabled", false)
	v.SetDefault("auth.user_header", "X-User-ID")
	v.SetDefault("auth.dev_user_id", "dev")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.equity_snapshot", "0 0 5 * * *")
	v.SetDefault("statement.max_loss_pct", 1.0)
	v.SetDefault("statement.obj_week_pct", 4.0)
	v.SetDefault("statement.obj_day_pct", 2.0)
	v.SetDefault("stream.enabled", true)
	v.SetDefault("stream.write_timeout", "5s")
	v.SetDefault("stream.buffered_sends", 16)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
