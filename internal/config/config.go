package config

// DefaultTarget is the page the bare command rewrites, relative to the
// working directory. It is not configurable.
const DefaultTarget = "netlify-deploy/pebble-static-config.html"

// ConfigDir and ConfigBaseName locate the optional config file:
// .config/swatchnorm.{yaml,yml,json}
const (
	ConfigDir      = ".config"
	ConfigBaseName = "swatchnorm"
)

// CheckConfig configures the check command
type CheckConfig struct {
	// Files are doublestar glob patterns, relative to the working directory,
	// of the pages to audit. Empty means DefaultTarget.
	Files []string `yaml:"files" json:"files" validate:"dive,required,glob"`

	// Strict makes warnings fail the check as well as errors
	Strict bool `yaml:"strict" json:"strict"`
}

// Config is the optional swatchnorm configuration
type Config struct {
	// LogLevel is one of debug, info, warn, error. Default: warn
	LogLevel string `yaml:"logLevel" json:"logLevel" validate:"omitempty,oneof=debug info warn warning error"`

	Check CheckConfig `yaml:"check" json:"check"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Check: CheckConfig{
			Files: []string{DefaultTarget},
		},
	}
}

// CheckPatterns returns the configured check patterns, or DefaultTarget
func (c *Config) CheckPatterns() []string {
	if c == nil || len(c.Check.Files) == 0 {
		return []string{DefaultTarget}
	}
	return c.Check.Files
}
