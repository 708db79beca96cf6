package lut

import "log/slog"

// buildConfig holds configuration for table construction.
type buildConfig struct {
	logger     *slog.Logger
	indexLimit int
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

// WithLogger sets the logger used to report build progress.
// A nil logger disables logging, which is the default.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(cfg *buildConfig) {
		cfg.logger = logger
	}
}

// WithIndexLimit lowers the largest offset or count the built table may use.
// Values outside [1, MaxIndex] are treated as MaxIndex.
func WithIndexLimit(n int) BuildOption {
	return func(cfg *buildConfig) {
		if n < 1 || n > MaxIndex {
			n = MaxIndex
		}
		cfg.indexLimit = n
	}
}
