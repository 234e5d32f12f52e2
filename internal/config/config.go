// Package config loads the batch pricer configuration with viper.
//
// Values come from, in increasing priority: built-in defaults, the config
// file, and OPTION_PRICER_* environment variables (OPTION_PRICER_PRICING_WORKERS
// overrides pricing.workers).
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/portfolio"
	"github.com/contactkeval/option-pricer/internal/pricing"
)

const envPrefix = "OPTION_PRICER"

type Config struct {
	ReportDir string               `mapstructure:"report_dir"`
	Pricing   PricingConfig        `mapstructure:"pricing"`
	Logger    logger.Config        `mapstructure:"logger"`
	Contracts []portfolio.Contract `mapstructure:"contracts"`
}

type PricingConfig struct {
	// ExpiryPolicy is "reject" or "intrinsic".
	ExpiryPolicy    string `mapstructure:"expiry_policy"`
	StrictSelectors bool   `mapstructure:"strict_selectors"`
	Workers         int    `mapstructure:"workers"`
}

// Policy returns the parsed expiry policy.
func (c PricingConfig) Policy() (pricing.ExpiryPolicy, error) {
	return pricing.ParseExpiryPolicy(c.ExpiryPolicy)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report_dir", "reports")
	v.SetDefault("pricing.expiry_policy", "reject")
	v.SetDefault("pricing.strict_selectors", false)
	v.SetDefault("pricing.workers", 0)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.file_path", "logs/option-pricer.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
}

// Load reads the config file at path. The format follows the file extension
// (yaml, json, toml).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail later in the run.
// Contract parameters are not checked here; the pricer reports them per quote.
func (c *Config) Validate() error {
	if c.ReportDir == "" {
		return errors.New("report_dir is empty")
	}
	if _, err := c.Pricing.Policy(); err != nil {
		return err
	}
	if c.Pricing.Workers < 0 {
		return errors.Errorf("pricing.workers must be >= 0, got %d", c.Pricing.Workers)
	}
	if _, err := logger.ParseLevel(c.Logger.Level); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Contracts))
	for i, ct := range c.Contracts {
		if ct.ID == "" {
			return errors.Errorf("contracts[%d]: id is empty", i)
		}
		if seen[ct.ID] {
			return errors.Errorf("contracts[%d]: duplicate id %q", i, ct.ID)
		}
		seen[ct.ID] = true
	}
	return nil
}
