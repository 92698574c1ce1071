package composer

import "log/slog"

// Option configures the Composer.
type Option func(*Composer)

// WithPromptDriver overrides the prompt driver used by the composer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(c *Composer) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithLogger receives a debug record per composed fragment.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPreview prints the document after every action.
func WithPreview(enabled bool) Option {
	return func(c *Composer) {
		c.preview = enabled
	}
}
