package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDir is the per-user directory under $HOME holding configs, the
// database and the log file.
const HomeDir = ".playroom"

// LoadBubbles loads the bubble scene configuration.
// Search order: customPath -> ~/.playroom/configs/bubbles.yaml -> ./configs/bubbles.yaml -> embedded default.
// Files are applied over the defaults, so a partial file only overrides what it names.
func LoadBubbles(customPath string) (BubblesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBubblesConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseBubbles(data)
		if err != nil {
			return DefaultBubblesConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{UserPath("configs", "bubbles.yaml"), filepath.Join("configs", "bubbles.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseBubbles(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseBubbles(defaultBubblesYAML)
	if err != nil {
		return DefaultBubblesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseBubbles(data []byte) (BubblesConfig, error) {
	cfg := DefaultBubblesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the scene cannot run with.
func (c BubblesConfig) Validate() error {
	var errs []error
	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("sizes: at least one size class required"))
	}
	for _, s := range c.Sizes {
		if s.MinSize <= 0 || s.MaxSize < s.MinSize {
			errs = append(errs, fmt.Errorf("sizes.%s: bad size range [%v, %v]", s.Name, s.MinSize, s.MaxSize))
		}
		if s.TTLMinMs <= 0 || s.TTLMaxMs < s.TTLMinMs {
			errs = append(errs, fmt.Errorf("sizes.%s: bad ttl range [%d, %d]", s.Name, s.TTLMinMs, s.TTLMaxMs))
		}
	}
	if c.Population.Min <= 0 || c.Population.Max < c.Population.Min {
		errs = append(errs, fmt.Errorf("population: bad range [%d, %d]", c.Population.Min, c.Population.Max))
	}
	if c.Placement.Attempts <= 0 {
		errs = append(errs, errors.New("placement.attempts must be positive"))
	}
	if c.Emitter.MaxShots <= 0 || c.Emitter.IntervalMs <= 0 {
		errs = append(errs, errors.New("emitter: max_shots and interval_ms must be positive"))
	}
	if c.Combo.Threshold <= 0 {
		errs = append(errs, errors.New("combo.threshold must be positive"))
	}
	if c.Parental.Taps <= 0 {
		errs = append(errs, errors.New("parental.taps must be positive"))
	}
	return errors.Join(errs...)
}

// UserPath joins elem under ~/.playroom, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, HomeDir}, elem...)...)
}
