package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// Crawling
	NavTimeout  time.Duration
	SettleDelay time.Duration
	MaxPages    int
	Engine      string
	UserAgent   string
	Proxy       string

	// Browser
	Headless   bool
	ChromePath string

	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int

	// Output
	OutputDir string
}

// Load builds a Config by combining defaults, environment variables, and
// CLI flags. Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:       DefaultLogLevel,
		JSONLog:        DefaultJSONLog,
		NavTimeout:     DefaultNavTimeout,
		SettleDelay:    DefaultSettleDelay,
		MaxPages:       DefaultMaxPages,
		Engine:         DefaultEngine,
		UserAgent:      DefaultUserAgent,
		Headless:       DefaultHeadless,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
		OutputDir:      DefaultOutputDir,
	}

	// Environment overrides
	if v := os.Getenv("SCOUT_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("SCOUT_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCOUT_CHROME_PATH"); v != "" {
		cfg.ChromePath = v
	}
	if v := os.Getenv("SCOUT_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	// CLI flag overrides
	if cmd != nil {
		flags := cmd.Flags()
		if f := flags.Lookup("user-agent"); f != nil && f.Changed {
			cfg.UserAgent = f.Value.String()
		}
		if f := flags.Lookup("proxy"); f != nil && f.Changed {
			cfg.Proxy = f.Value.String()
		}
		if f := flags.Lookup("chrome-path"); f != nil && f.Changed {
			cfg.ChromePath = f.Value.String()
		}
		if f := flags.Lookup("output-dir"); f != nil && f.Changed {
			cfg.OutputDir = f.Value.String()
		}
		if f := flags.Lookup("headless"); f != nil && f.Changed {
			cfg.Headless = f.Value.String() == "true"
		}
		if f := flags.Lookup("json"); f != nil && f.Value.String() == "true" {
			cfg.JSONLog = true
		}
		if f := flags.Lookup("verbose"); f != nil && f.Value.String() == "true" {
			cfg.LogLevel = "debug"
		}
		if f := flags.Lookup("quiet"); f != nil && f.Value.String() == "true" {
			cfg.LogLevel = "error"
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
