package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultStorageProvider is the persistence provider used when none is configured.
const DefaultStorageProvider = "sqlite"

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	SentryDSN string `mapstructure:"sentry_dsn"`
	Storage   struct {
		Provider string `mapstructure:"provider"` // memory, redis or sqlite
		Path     string `mapstructure:"path"`     // sqlite database file
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"storage"`
	Settings struct {
		Defaults struct {
			UILanguage         string  `mapstructure:"ui_language"`
			DownloadMedia      bool    `mapstructure:"download_media"`
			LockTimeout        int     `mapstructure:"lock_timeout"` // seconds
			FontSizeAdjustment float64 `mapstructure:"font_size_adjustment"`
		} `mapstructure:"defaults"`
	} `mapstructure:"settings"`
	Metrics struct {
		Enabled bool   `mapstructure:"enabled"`
		Address string `mapstructure:"address"`
		Port    int    `mapstructure:"port"`
	} `mapstructure:"metrics"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Debug().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
	logger.Debug().Str("storage", config.Storage.Provider).Msg("Configuration loaded successfully")
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.Storage.Provider == "" {
		config.Storage.Provider = DefaultStorageProvider
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("sentry_dsn", "")
	v.SetDefault("storage.provider", DefaultStorageProvider)
	v.SetDefault("storage.path", "readerprefs.db")
	v.SetDefault("storage.redis.address", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("settings.defaults.ui_language", "en")
	v.SetDefault("settings.defaults.download_media", true)
	v.SetDefault("settings.defaults.lock_timeout", 300)
	v.SetDefault("settings.defaults.font_size_adjustment", 0.0)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.address", "localhost")
	v.SetDefault("metrics.port", 9090)
}

func GetConfig() *Config {
	return globalConfig
}

func GetLogger() zerolog.Logger {
	return logger
}
