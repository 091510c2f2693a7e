package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// LoadPropertySettings returns the default property settings overlaid with the YAML file at
// cfg.SettingsFile, when one is named. Keys absent from the file keep their defaults.
func LoadPropertySettings(cfg PropertyConfig) (valueobject.PropertySettings, error) {
	settings := valueobject.DefaultPropertySettings()

	if cfg.SettingsFile != "" {
		data, err := os.ReadFile(cfg.SettingsFile)
		if err != nil {
			return settings, fmt.Errorf("failed to read property settings: %w", err)
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return settings, fmt.Errorf("failed to parse property settings: %w", err)
		}
	}

	if cfg.ManagerEmail != "" {
		settings.ManagerEmail = cfg.ManagerEmail
	}

	if _, err := time.LoadLocation(settings.TimeZone); err != nil {
		return settings, fmt.Errorf("invalid property time zone %q: %w", settings.TimeZone, err)
	}

	return settings, nil
}
