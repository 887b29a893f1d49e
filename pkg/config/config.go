package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/viper"

	"github.com/goliatone/go-pectin/pkg/bean"
	"github.com/goliatone/go-pectin/pkg/validationbind"
)

// EnvPrefix prefixes environment overrides, e.g. PECTIN_THEME_NAME.
const EnvPrefix = "PECTIN"

// Config holds process configuration.
type Config struct {
	Validation ValidationConfig `mapstructure:"validation"`
	Theme      ThemeConfig      `mapstructure:"theme"`
	Rules      RulesConfig      `mapstructure:"rules"`
	Bean       BeanConfig       `mapstructure:"bean"`
}

// ValidationConfig names the styles applied to widgets per severity.
type ValidationConfig struct {
	ErrorStyle   string `mapstructure:"error_style"`
	WarningStyle string `mapstructure:"warning_style"`
	InfoStyle    string `mapstructure:"info_style"`
}

// ThemeConfig selects a go-theme theme whose tokens override the styles.
type ThemeConfig struct {
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant"`
}

// RulesConfig points at a declarative rule set.
type RulesConfig struct {
	Path string `mapstructure:"path"`
}

// BeanConfig controls bean providers.
type BeanConfig struct {
	AutoCommit bool `mapstructure:"auto_commit"`
}

// Load reads configuration from path, or when path is empty from
// $PECTIN_CONFIG, falling back to pectin.{toml,yaml,json} in the working
// directory and ~/.config/pectin. A missing default file is not an error.
// Env vars with prefix PECTIN_ override file values.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := validationbind.DefaultStyles()
	v.SetDefault("validation.error_style", defaults.Error)
	v.SetDefault("validation.warning_style", defaults.Warning)
	v.SetDefault("validation.info_style", defaults.Info)
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("rules.path", "")
	v.SetDefault("bean.auto_commit", false)

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pectin"))
		v.SetConfigName("pectin")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Styles returns the configured validation styles.
func (c Config) Styles() validationbind.Styles {
	return validationbind.Styles{
		Error:   c.Validation.ErrorStyle,
		Warning: c.Validation.WarningStyle,
		Info:    c.Validation.InfoStyle,
	}
}

// BinderOptions turns the configuration into validation binder options. The
// theme selector is only consulted when a theme name is configured.
func (c Config) BinderOptions(selector theme.ThemeSelector) []validationbind.Option {
	opts := []validationbind.Option{validationbind.WithStyles(c.Styles())}
	if selector != nil && c.Theme.Name != "" {
		opts = append(opts, validationbind.WithThemeSelector(selector, c.Theme.Name, c.Theme.Variant))
	}
	return opts
}

// ProviderOptions turns the configuration into bean provider options.
func (c Config) ProviderOptions() []bean.Option {
	if c.Bean.AutoCommit {
		return []bean.Option{bean.WithAutoCommit()}
	}
	return nil
}
