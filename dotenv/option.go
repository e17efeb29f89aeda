package dotenv

import "github.com/ardnew/denv/log"

// Option configures parsing and finalization behavior.
type Option func(config) config

type config struct {
	braceless      bool
	exportPrefix   bool
	colonSeparator bool
	logger         log.Logger
}

func makeConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithBracelessVariables enables recognition of bare $name references in
// addition to the always-recognized ${name} form.
func WithBracelessVariables(enable bool) Option {
	return func(c config) config {
		c.braceless = enable

		return c
	}
}

// WithExportPrefix strips a leading "export " from keys, accepting files
// written to be sourced by a shell.
func WithExportPrefix(enable bool) Option {
	return func(c config) config {
		c.exportPrefix = enable

		return c
	}
}

// WithColonSeparator additionally accepts ": " as the key/value separator,
// accepting YAML-style mappings. The colon must be followed by a space to
// separate keys; "=" always separates.
func WithColonSeparator(enable bool) Option {
	return func(c config) config {
		c.colonSeparator = enable

		return c
	}
}

// WithLogger routes diagnostic records (discarded lines, circular
// references) to the given logger. The zero logger discards them.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}
