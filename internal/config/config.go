package config

import (
	"fmt"
	"os"

	"github.com/gyeh/datenorm/internal/datephrase"

	"gopkg.in/yaml.v3"
)

// Order policies for bare numeric dates in batch runs.
const (
	OrderMDY        = "mdy"        // month-first, swapped per phrase when needed
	OrderDMY        = "dmy"        // always day-first
	OrderConsistent = "consistent" // one reading for the whole file, decided by vote
)

const (
	DefaultBatchSize  = 1024
	DefaultSampleSize = 1000
)

// Config holds all runtime configuration for a datenorm run.
type Config struct {
	DSN        string
	FilePath   string
	OutPath    string
	LogFormat  string // "text" or "json"
	LogLevel   string
	Force      bool
	Order      string
	BatchSize  int
	SampleSize int
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Order      string `yaml:"order"`
	BatchSize  int    `yaml:"batch_size"`
	SampleSize int    `yaml:"sample_size"`
	LogLevel   string `yaml:"log_level"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Keys missing from the file leave the current values alone.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Order != "" {
		c.Order = yc.Order
	}
	if yc.BatchSize != 0 {
		c.BatchSize = yc.BatchSize
	}
	if yc.SampleSize != 0 {
		c.SampleSize = yc.SampleSize
	}
	if yc.LogLevel != "" {
		c.LogLevel = yc.LogLevel
	}
	return c.ValidateTuning()
}

// ValidateTuning fills defaults for unset tuning values and rejects bad ones.
// Commands that take no input file call it directly.
func (c *Config) ValidateTuning() error {
	if c.Order == "" {
		c.Order = OrderMDY
	}
	switch c.Order {
	case OrderMDY, OrderDMY, OrderConsistent:
	default:
		return fmt.Errorf("unknown order %q in config (want %s, %s or %s)", c.Order, OrderMDY, OrderDMY, OrderConsistent)
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.SampleSize == 0 {
		c.SampleSize = DefaultSampleSize
	}
	if c.SampleSize < 0 {
		return fmt.Errorf("sample_size must be positive, got %d", c.SampleSize)
	}
	return nil
}

// FixedOrder returns the reading used for every phrase, or ok=false when the
// order has to be voted on from the file contents first.
func (c *Config) FixedOrder() (order datephrase.Order, ok bool) {
	switch c.Order {
	case OrderDMY:
		return datephrase.DayFirst, true
	case OrderConsistent:
		return datephrase.MonthFirst, false
	default:
		return datephrase.MonthFirst, true
	}
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if err := c.ValidateTuning(); err != nil {
		return err
	}
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATENORM_DB_URL is required")
	}
	return nil
}

// ValidateWithOutput checks both file and output path fields.
func (c *Config) ValidateWithOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutPath == "" {
		return fmt.Errorf("--out is required")
	}
	if c.OutPath == c.FilePath {
		return fmt.Errorf("--out must differ from --file")
	}
	return nil
}
