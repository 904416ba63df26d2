package pipeline

import (
	"github.com/YuminosukeSato/arules/pkg/errors"
)

// Config holds the mining thresholds.
type Config struct {
	// MinSupport is the minimum fraction of observations an itemset must appear in, (0, 1].
	MinSupport float64 `mapstructure:"min_support" yaml:"min_support" json:"min_support"`
	// MinConfidence is the minimum rule reliability, (0, 1].
	MinConfidence float64 `mapstructure:"min_confidence" yaml:"min_confidence" json:"min_confidence"`
	// MaxLen caps itemset size.
	MaxLen int `mapstructure:"max_len" yaml:"max_len" json:"max_len"`
	// MinLift drops rules with a lower lift; 0 disables the filter.
	MinLift float64 `mapstructure:"min_lift" yaml:"min_lift" json:"min_lift"`
	// Workers bounds parallel sections; 0 means runtime.NumCPU().
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`
	// CanonicalOrder breaks ranking ties by the rendered antecedent and consequent.
	CanonicalOrder bool `mapstructure:"canonical_order" yaml:"canonical_order" json:"canonical_order"`
}

// DefaultConfig returns min_support=0.3, min_confidence=0.7, max_len=3 with the lift filter off.
func DefaultConfig() Config {
	return Config{
		MinSupport:    0.3,
		MinConfidence: 0.7,
		MaxLen:        3,
	}
}

// Validate returns a ConfigurationError for the first invalid option.
func (c Config) Validate() error {
	if !errors.InOpenUnitInterval(c.MinSupport) {
		return errors.NewConfigurationError("min_support", "must be in (0, 1]", c.MinSupport)
	}
	if !errors.InOpenUnitInterval(c.MinConfidence) {
		return errors.NewConfigurationError("min_confidence", "must be in (0, 1]", c.MinConfidence)
	}
	if c.MaxLen < 1 {
		return errors.NewConfigurationError("max_len", "must be at least 1", c.MaxLen)
	}
	if c.MinLift < 0 {
		return errors.NewConfigurationError("min_lift", "must not be negative", c.MinLift)
	}
	if c.Workers < 0 {
		return errors.NewConfigurationError("workers", "must not be negative", c.Workers)
	}
	return nil
}
