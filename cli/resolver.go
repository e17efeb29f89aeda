package cli

import (
	"context"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/denv/dotenv"
)

// resolve is a [kong.ConfigurationLoader] factory that parses config files
// written in the same dotenv format denv itself processes.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.env")
//
// Config keys map to flag names case-insensitively, with underscores in
// place of hyphens:
//
//	LOG_LEVEL=debug
//	LOG_FORMAT=text
//	BRACELESS=true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=text
//	--braceless=true
//
// Interpolation works in config files like any other source, so values may
// reference one another. Command-line flags override config file values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		env, err := dotenv.Load(ctx, r)
		if err != nil {
			// Unreadable config falls back to flag defaults.
			return settings{}, nil
		}

		s := make(settings, env.Len())
		for key, value := range env.All() {
			s[flagName(key)] = value
		}

		return s, nil
	}
}

// flagName converts a config key to its kong flag name.
func flagName(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}

// settings implements [kong.Resolver] for dotenv configs.
type settings map[string]string

// Validate implements [kong.Resolver].
func (s settings) Validate(*kong.Application) error {
	// No validation needed: the config was already parsed successfully.
	return nil
}

// Resolve implements [kong.Resolver].
func (s settings) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := s[flag.Name]; ok {
		return value, nil
	}

	// Not found: return nil to let Kong use defaults.
	return nil, nil
}
