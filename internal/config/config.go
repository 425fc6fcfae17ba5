// Package config holds the ambient, YAML-based CLI configuration (distinct
// from properties.go's key=value ConfigLoader): viper-driven Load/defaults/
// normalize-paths/ensure-output-dir shape, covering class-file analysis
// settings (component merging, inner-class acceptance, output report
// formats).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application's ambient configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Output   OutputConfig   `mapstructure:"output"`
}

// AnalysisConfig holds analysis behavior settings.
type AnalysisConfig struct {
	Components         []string `mapstructure:"components"`           // component-merge prefixes
	AcceptInnerClasses bool     `mapstructure:"accept_inner_classes"` // spec.md §4.C default true
	FilterPrefixes     []string `mapstructure:"filter_prefixes"`      // package-name prefixes to reject
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Dir      string   `mapstructure:"dir"`       // output directory
	FileName string   `mapstructure:"file_name"` // output file base name, no extension
	Formats  []string `mapstructure:"formats"`   // any of: excel, html, word, json
}

// Load reads the configuration from a YAML file, or uses defaults if
// configPath is empty or the file does not exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath == "" {
		configPath = "depscan.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("config file not found, using defaults")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("analysis.components", []string{})
	v.SetDefault("analysis.accept_inner_classes", true)
	v.SetDefault("analysis.filter_prefixes", []string{})

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "depscan-report")
	v.SetDefault("output.formats", []string{"json"})
}

func (c *Config) normalizePaths() error {
	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput
	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist.
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// OutputPath returns the full path for a report of the given format
// ("excel" -> .xlsx, "html" -> .html, "word" -> .docx, "json" -> .json).
func (c *Config) OutputPath(format string) string {
	ext := map[string]string{
		"excel": ".xlsx",
		"html":  ".html",
		"word":  ".docx",
		"json":  ".json",
	}[format]
	return filepath.Join(c.Output.Dir, c.Output.FileName+ext)
}

// Validate checks the configuration for obvious misconfiguration.
func (c *Config) Validate() error {
	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}
	for _, f := range c.Output.Formats {
		switch f {
		case "excel", "html", "word", "json":
		default:
			return fmt.Errorf("output.formats: unrecognized format %q", f)
		}
	}
	return nil
}

// Print displays the current configuration.
func (c *Config) Print() {
	fmt.Println("=== depscan configuration ===")
	fmt.Printf("Components:           %v\n", c.Analysis.Components)
	fmt.Printf("Accept inner classes: %v\n", c.Analysis.AcceptInnerClasses)
	fmt.Printf("Filter prefixes:      %v\n", c.Analysis.FilterPrefixes)
	fmt.Printf("Output directory:     %s\n", c.Output.Dir)
	fmt.Printf("Output formats:       %v\n", c.Output.Formats)
	fmt.Println("=============================")
}
