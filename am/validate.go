package am

import "github.com/teranos/atelier/errors"

// MaxVerbosity is the highest verbosity with distinct behaviour.
const MaxVerbosity = 2

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}
	if c.Log.Verbosity > MaxVerbosity {
		return errors.WithHintf(
			errors.Newf("log.verbosity must be <= %d, got %d", MaxVerbosity, c.Log.Verbosity),
			"use -v flags for one-off extra output")
	}
	return nil
}
