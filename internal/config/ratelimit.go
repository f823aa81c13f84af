package config

import "time"

// RateLimitConfig drives the Redis token-bucket middleware.
type RateLimitConfig struct {
	Enabled        bool          `koanf:"enabled"`
	Capacity       int           `koanf:"capacity" validate:"min=1"`
	RefillTokens   int           `koanf:"refill_tokens" validate:"min=1"`
	RefillInterval time.Duration `koanf:"refill_interval" validate:"gt=0"`
	TTL            time.Duration `koanf:"ttl" validate:"gt=0"`
	KeyStrategy    string        `koanf:"key_strategy" validate:"oneof=ip route ip_route"`
	Prefix         string        `koanf:"prefix" validate:"required"`
	Debug          bool          `koanf:"debug"`

	// Burst, when positive, replaces Capacity.  RefillEvery, when
	// positive, refills one token per period.
	Burst       int           `koanf:"burst" validate:"gte=0"`
	RefillEvery time.Duration `koanf:"refill_every" validate:"gte=0"`
}

// withOverrides applies Burst and RefillEvery and stretches TTL so a
// bucket outlives a few refills instead of resetting to full.
func (c RateLimitConfig) withOverrides() RateLimitConfig {
	if c.Burst > 0 {
		c.Capacity = c.Burst
	}
	if c.RefillEvery > 0 {
		c.RefillTokens = 1
		c.RefillInterval = c.RefillEvery
	}
	if minTTL := 5 * c.RefillInterval; c.TTL < minTTL {
		c.TTL = minTTL
	}
	return c
}
