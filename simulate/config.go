// SPDX-License-Identifier: MIT

package simulate

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config controls the step-size retry loop.
type Config struct {
	MinStep float64 `yaml:"min_step" validate:"gt=0"`
	MaxStep float64 `yaml:"max_step" validate:"gt=0,gtefield=MinStep"`
	NSteps  int     `yaml:"n_steps" validate:"min=1"`
}

// DefaultConfig returns MinStep 1e-8, MaxStep 0.1, NSteps 500.
func DefaultConfig() Config {
	return Config{MinStep: 1e-8, MaxStep: 0.1, NSteps: 500}
}

// Validate checks the struct tags of c.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return fmt.Errorf("%w: %s failed %q (%s)", ErrInvalidConfig, e.Field(), e.Tag(), e.Param())
	}

	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// LoadConfig reads a YAML document over DefaultConfig and validates it.
// Missing keys keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("simulate: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
