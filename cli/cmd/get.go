package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"
)

// Get prints the resolved value of a single key.
type Get struct {
	Name string `arg:"" help:"Key to look up" name:"name"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := loadEnv(ctx)
	if err != nil {
		return err
	}

	value, ok := env.Lookup(g.Name)
	if !ok {
		e := ErrKeyNotFound.With(slog.String("key", g.Name))

		if match := closest(g.Name, env.Keys()); match != "" {
			e = e.With(slog.String("suggestion", match))
		}

		return e
	}

	fmt.Println(value)

	return nil
}

// closest returns the best fuzzy match for name among keys, or the empty
// string when nothing matches.
func closest(name string, keys []string) string {
	matches := fuzzy.Find(name, keys)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}
