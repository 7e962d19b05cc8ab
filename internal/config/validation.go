package config

import "fmt"

func validate(c *Config) error {
	if c.NavTimeout <= 0 {
		return fmt.Errorf("navigation timeout must be > 0")
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle delay must be >= 0")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("max pages must be > 0")
	}
	if c.Engine != "chrome" && c.Engine != "http" {
		return fmt.Errorf("engine must be chrome or http, got %q", c.Engine)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be > 0")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output dir must not be empty")
	}
	return nil
}
