// SPDX-License-Identifier: MIT

// Package config loads quantlab settings from flags, environment, an optional
// .env file and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/quantlab/internal/logging"
	"github.com/katalvlaran/quantlab/ztable"
)

// EnvPrefix prefixes every environment variable, e.g. QUANTLAB_LOG_LEVEL.
const EnvPrefix = "QUANTLAB"

// DefaultEnvFile is the dotenv file read when present.
const DefaultEnvFile = ".env"

// Keys shared by viper, cobra flags and config files.
const (
	KeyConfig             = "config"
	KeyLogLevel           = "log-level"
	KeyLogFile            = "log-file"
	KeyLogRotateMaxSize   = "log-rotate-max-size"
	KeyLogRotateMaxBackup = "log-rotate-max-backup"
	KeyLogRotateMaxAge    = "log-rotate-max-age"
	KeyFormat             = "format"
	KeyPrecision          = "precision"
	KeySeed               = "seed"
	KeyListen             = "listen"
)

// ErrInvalid reports a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// maxPrecision bounds the rendered decimals.
const maxPrecision = 15

// Config holds every runtime setting.
type Config struct {
	ConfigFile         string `mapstructure:"config"`
	LogLevel           string `mapstructure:"log-level"`
	LogFile            string `mapstructure:"log-file"`
	LogRotateMaxSize   int    `mapstructure:"log-rotate-max-size"`
	LogRotateMaxBackup int    `mapstructure:"log-rotate-max-backup"`
	LogRotateMaxAge    int    `mapstructure:"log-rotate-max-age"`
	Format             string `mapstructure:"format"`
	Precision          int    `mapstructure:"precision"`
	Seed               uint64 `mapstructure:"seed"`
	Listen             string `mapstructure:"listen"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:           "info",
		LogRotateMaxSize:   logging.DefaultMaxSize,
		LogRotateMaxBackup: logging.DefaultMaxBackups,
		LogRotateMaxAge:    logging.DefaultMaxAge,
		Format:             string(ztable.FormatText),
		Precision:          ztable.DefaultPrecision,
		Seed:               0,
		Listen:             ":8080",
	}
}

// Load resolves the configuration.
//
// Implementation:
//   - Stage 1: apply envFile with godotenv; a missing file is not an error.
//   - Stage 2: register defaults, the QUANTLAB_ env prefix and the flags.
//   - Stage 3: read the config file named by --config, or quantlab.{yaml,toml,json}
//     from the working directory when present.
//   - Stage 4: unmarshal and validate.
func Load(flags *pflag.FlagSet, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyLogRotateMaxSize, d.LogRotateMaxSize)
	v.SetDefault(KeyLogRotateMaxBackup, d.LogRotateMaxBackup)
	v.SetDefault(KeyLogRotateMaxAge, d.LogRotateMaxAge)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyPrecision, d.Precision)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyListen, d.Listen)
}

func readConfigFile(v *viper.Viper) error {
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("quantlab")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	var parseErr viper.ConfigParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("config: parse %s: %w", v.ConfigFileUsed(), err)
	}

	return fmt.Errorf("config: read: %w", err)
}

// Validate checks the format name and numeric bounds.
func (c Config) Validate() error {
	if _, err := ztable.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("%w: precision %d not in [0,%d]", ErrInvalid, c.Precision, maxPrecision)
	}
	if c.LogRotateMaxSize < 0 || c.LogRotateMaxBackup < 0 || c.LogRotateMaxAge < 0 {
		return fmt.Errorf("%w: negative log rotation setting", ErrInvalid)
	}

	return nil
}

// OutputFormat returns the parsed Format; call after Validate.
func (c Config) OutputFormat() ztable.Format {
	f, _ := ztable.ParseFormat(c.Format)

	return f
}

// Logging maps the log settings onto logging.Options.
func (c Config) Logging() logging.Options {
	return logging.Options{
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSize:    c.LogRotateMaxSize,
		MaxBackups: c.LogRotateMaxBackup,
		MaxAge:     c.LogRotateMaxAge,
	}
}
