package config

import (
	"fmt"
	"math/bits"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "opdemo.yaml"

// Config holds all opdemo configuration.
type Config struct {
	Arithmetic  ArithmeticConfig  `yaml:"arithmetic"`
	Bitwise     BitwiseConfig     `yaml:"bitwise"`
	ControlFlow ControlFlowConfig `yaml:"control_flow"`
	Output      OutputConfig      `yaml:"output"`

	// Steps lists the routines to run. Empty means all of them.
	Steps []string `yaml:"steps,omitempty"`

	Logging LoggingConfig `yaml:"logging"`
}

// ArithmeticConfig holds the operands of the arithmetic routine.
type ArithmeticConfig struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// BitwiseConfig holds the operands of the bitwise routine.
type BitwiseConfig struct {
	A     int  `yaml:"a"`
	B     int  `yaml:"b"`
	Shift uint `yaml:"shift"`
}

// ControlFlowConfig bounds the control flow loop.
type ControlFlowConfig struct {
	Limit int `yaml:"limit"`
}

// OutputConfig is the line written by the output routine.
type OutputConfig struct {
	Message string `yaml:"message"`
}

// MaxShiftedBits bounds bitwise.a<<bitwise.shift: the shifted value must fit
// in this many bits, which keeps it a non-negative int32.
const MaxShiftedBits = 31

// DefaultConfig returns the configuration that reproduces the stock program.
func DefaultConfig() *Config {
	return &Config{
		Arithmetic:  ArithmeticConfig{A: 10, B: 20},
		Bitwise:     BitwiseConfig{A: 0xF0, B: 0x0F, Shift: 2},
		ControlFlow: ControlFlowConfig{Limit: 10},
		Output:      OutputConfig{Message: "Hello, World!"},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
	}
}

// Load reads config from a YAML file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes config to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("OPDEMO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if msg := os.Getenv("OPDEMO_MESSAGE"); msg != "" {
		c.Output.Message = msg
	}
}

// Validate checks the configuration for values the routines cannot run with.
func (c *Config) Validate() error {
	if c.Arithmetic.B == 0 {
		return fmt.Errorf("arithmetic.b must not be zero")
	}
	if c.Bitwise.A < 0 {
		return fmt.Errorf("bitwise.a must be non-negative, got %d", c.Bitwise.A)
	}
	if c.Bitwise.Shift > MaxShiftedBits {
		return fmt.Errorf("bitwise.shift %d exceeds %d", c.Bitwise.Shift, MaxShiftedBits)
	}
	if width := uint(bits.Len(uint(c.Bitwise.A))); width+c.Bitwise.Shift > MaxShiftedBits {
		return fmt.Errorf("bitwise.a<<bitwise.shift needs %d bits, limit is %d", width+c.Bitwise.Shift, MaxShiftedBits)
	}
	if c.ControlFlow.Limit < 0 {
		return fmt.Errorf("control_flow.limit must be non-negative, got %d", c.ControlFlow.Limit)
	}
	if c.Output.Message == "" {
		return fmt.Errorf("output.message must not be empty")
	}
	return c.Logging.Validate()
}
