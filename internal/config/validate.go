package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if len(c.Auth.EncryptionSecret) < 32 {
		return fmt.Errorf("auth.encryption_secret must be at least 32 characters (got %d)", len(c.Auth.EncryptionSecret))
	}
	if len(c.Scheduler.SweepSecret) < 16 {
		return fmt.Errorf("scheduler.sweep_secret must be at least 16 characters (got %d)", len(c.Scheduler.SweepSecret))
	}

	if c.Scheduler.BatchSize <= 0 {
		return fmt.Errorf("scheduler.batch_size must be > 0 (got %d)", c.Scheduler.BatchSize)
	}
	if c.Scheduler.SweepBudget <= 0 {
		return fmt.Errorf("scheduler.sweep_budget must be > 0 (got %v)", c.Scheduler.SweepBudget)
	}
	if c.Scheduler.ClaimTTL <= 0 {
		return fmt.Errorf("scheduler.claim_ttl must be > 0 (got %v)", c.Scheduler.ClaimTTL)
	}

	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site.base_url must be an absolute URL (got %q)", c.Site.BaseURL)
	}
	if !strings.HasPrefix(c.Site.BlogPath, "/") {
		return fmt.Errorf("site.blog_path must start with / (got %q)", c.Site.BlogPath)
	}

	return nil
}
