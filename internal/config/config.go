package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

type Config struct {
	Port            string
	DBPath          string
	Location        *time.Location
	DefaultLanguage string
	LocalesDir      string
	Log             LogConfig
	Import          ImportConfig
}

type LogConfig struct {
	Level          string
	Format         string
	ElkEnable      bool
	ElkURL         string
	ElkIndex       string
	LogstashEnable bool
	LogstashURL    string
}

type ImportConfig struct {
	WatchDir string
	AMQPURL  string
	Queue    string
}

type LoadOptions struct {
	EnvFile    string
	ConfigFile string
}

// Load reads settings from an optional config file, then from the environment
// (after preloading EnvFile). Nested keys map to upper snake case variables,
// so log.level is read from LOG_LEVEL.
func Load(options LoadOptions) (Config, error) {
	if options.EnvFile != "" {
		if err := godotenv.Load(options.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", options.EnvFile, err)
		}
	}

	settings := viper.New()
	settings.SetDefault("port", "8080")
	settings.SetDefault("db_path", filepath.Join("data", "medmind.db"))
	settings.SetDefault("tz", "UTC")
	settings.SetDefault("default_language", "en")
	settings.SetDefault("locales_dir", "")
	settings.SetDefault("log.level", "info")
	settings.SetDefault("log.format", "text")
	settings.SetDefault("log.elk.enable", false)
	settings.SetDefault("log.elk.index", "medmind")
	settings.SetDefault("log.logstash.enable", false)
	settings.SetDefault("import.queue", "medmind.records")

	if options.ConfigFile != "" {
		settings.SetConfigFile(options.ConfigFile)
	} else {
		settings.SetConfigName("config")
		settings.SetConfigType("yml")
		settings.AddConfigPath(".")
	}
	if err := settings.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	settings.AutomaticEnv()
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port, err := resolvePort(settings.GetString("port"))
	if err != nil {
		return Config{}, err
	}
	location, err := loadLocation(settings.GetString("tz"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:            port,
		DBPath:          strings.TrimSpace(settings.GetString("db_path")),
		Location:        location,
		DefaultLanguage: strings.TrimSpace(settings.GetString("default_language")),
		LocalesDir:      strings.TrimSpace(settings.GetString("locales_dir")),
		Log: LogConfig{
			Level:          settings.GetString("log.level"),
			Format:         settings.GetString("log.format"),
			ElkEnable:      settings.GetBool("log.elk.enable"),
			ElkURL:         settings.GetString("log.elk.url"),
			ElkIndex:       settings.GetString("log.elk.index"),
			LogstashEnable: settings.GetBool("log.logstash.enable"),
			LogstashURL:    settings.GetString("log.logstash.url"),
		},
		Import: ImportConfig{
			WatchDir: strings.TrimSpace(settings.GetString("import.watch_dir")),
			AMQPURL:  strings.TrimSpace(settings.GetString("import.amqp_url")),
			Queue:    strings.TrimSpace(settings.GetString("import.queue")),
		},
	}, nil
}

func resolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	return strconv.Itoa(value), nil
}

func loadLocation(name string) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, name, err)
	}
	return location, nil
}
