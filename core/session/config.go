package session

import "time"

// Config holds session and component defaults.
type Config struct {
	// SessionTTLSeconds is how long an idle session is kept. Zero keeps sessions forever.
	SessionTTLSeconds int `mapstructure:"session_ttl_seconds" default:"1800"`
	// SweepIntervalSeconds is how often idle sessions are looked for.
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds" default:"60"`
	// SelectionMode is the default selection preservation mode of new components
	// (discard, preserve_existing, preserve_all).
	SelectionMode string `mapstructure:"selection_mode" default:"discard"`
	// PageLimit caps the number of items a component shows. Zero means no cap.
	PageLimit int `mapstructure:"page_limit" default:"200"`
}

// TTL returns the session TTL as a duration.
func (c Config) TTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

// SweepInterval returns the sweep interval, defaulting to one minute.
func (c Config) SweepInterval() time.Duration {
	if c.SweepIntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}
