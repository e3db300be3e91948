package config

import "fmt"

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level,omitempty"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format,omitempty"` // json, console
}

// Validate reports an unknown level or format.
func (c *LoggingConfig) Validate() error {
	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Level, ValidLogLevels)
	}

	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Format)
	}
	return nil
}
