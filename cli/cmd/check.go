package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/denv/dotenv"
	"github.com/ardnew/denv/log"
)

// Check verifies that every variable reference resolved, exiting nonzero
// when any value retains a circular reference.
type Check struct {
	Quiet bool `help:"Suppress per-key output"                short:"q"`
	Color bool `default:"false" help:"Colorize output" negatable:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := loadEnv(ctx)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	var circular []string

	for _, key := range env.Keys() {
		status := env.Status(key)
		if status == dotenv.StatusCircular {
			circular = append(circular, key)
		}

		if !c.Quiet {
			fmt.Fprintf(w, "%s%s%s\n",
				renderKey(key, c.Color),
				renderPunct(": ", c.Color),
				renderStatus(status, c.Color),
			)
		}
	}

	if len(circular) > 0 {
		return ErrCircularReference.With(
			slog.Int("count", len(circular)),
			slog.String("keys", strings.Join(circular, ",")),
		)
	}

	log.DebugContext(ctx, "all references resolved",
		slog.Int("keys", env.Len()),
	)

	return nil
}
