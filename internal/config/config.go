package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/YuminosukeSato/arules/pipeline"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Mining thresholds
	MinSupport     float64 `mapstructure:"min_support" yaml:"min_support"`
	MinConfidence  float64 `mapstructure:"min_confidence" yaml:"min_confidence"`
	MaxLen         int     `mapstructure:"max_len" yaml:"max_len"`
	MinLift        float64 `mapstructure:"min_lift" yaml:"min_lift"`
	Workers        int     `mapstructure:"workers" yaml:"workers"`
	CanonicalOrder bool    `mapstructure:"canonical_order" yaml:"canonical_order"`

	// Dataset
	DataPath     string `mapstructure:"data_path" yaml:"data_path"`
	DataURL      string `mapstructure:"data_url" yaml:"data_url"`
	CachePath    string `mapstructure:"cache_path" yaml:"cache_path"`
	Codebook     string `mapstructure:"codebook" yaml:"codebook"`
	TargetColumn string `mapstructure:"target_column" yaml:"target_column"`
	DropConstant bool   `mapstructure:"drop_constant" yaml:"drop_constant"`

	// Output
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Output   string `mapstructure:"output" yaml:"output"`
}

// Mining returns the pipeline thresholds.
func (g *Global) Mining() pipeline.Config {
	return pipeline.Config{
		MinSupport:     g.MinSupport,
		MinConfidence:  g.MinConfidence,
		MaxLen:         g.MaxLen,
		MinLift:        g.MinLift,
		Workers:        g.Workers,
		CanonicalOrder: g.CanonicalOrder,
	}
}

// Dir returns ~/.arules.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".arules"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.arules/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env (ARULES_*) > config file > defaults. Command flags are
// applied on top by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("ARULES")
	v.AutomaticEnv()

	def := pipeline.DefaultConfig()
	v.SetDefault("min_support", def.MinSupport)
	v.SetDefault("min_confidence", def.MinConfidence)
	v.SetDefault("max_len", def.MaxLen)
	v.SetDefault("min_lift", def.MinLift)
	v.SetDefault("workers", 0)
	v.SetDefault("canonical_order", false)
	v.SetDefault("data_path", "")
	v.SetDefault("data_url", "")
	v.SetDefault("cache_path", "")
	v.SetDefault("codebook", "mushroom")
	v.SetDefault("target_column", "poisonous")
	v.SetDefault("drop_constant", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "table")

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.CachePath == "" {
		c.CachePath = filepath.Join(dir, "data", "mushrooms_raw.csv")
	}
	return &c, nil
}
