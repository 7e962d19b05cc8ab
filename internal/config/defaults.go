package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel    = "info"
	DefaultJSONLog     = false
	DefaultUserAgent   = "Scout/1.0 (+https://github.com/company-scout/scout)"
	DefaultNavTimeout  = 10 * time.Second
	DefaultSettleDelay = 2 * time.Second
	DefaultMaxPages    = 8
	DefaultEngine      = "chrome"
	DefaultHeadless    = true
	DefaultOutputDir   = "reports"

	DefaultRateLimitRPS   = 1.0
	DefaultRateLimitBurst = 2
)
