package log

// Option applies a single configuration setting to config.
type Option func(config) config

// apply folds opts over cfg in order and returns the result.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}
