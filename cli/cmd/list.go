package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// List prints every resolved key and value in appearance order.
type List struct {
	Filter string `help:"Keep only entries matching this expression" placeholder:"EXPR" short:"e"`
	Status bool   `help:"Append each entry's resolution status"                         short:"t"`
	Color  bool   `default:"false" help:"Colorize output" negatable:""`
}

// entry is the expression environment a --filter program evaluates
// against, once per resolved key.
type entry struct {
	Key    string `expr:"key"`
	Value  string `expr:"value"`
	Status string `expr:"status"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := loadEnv(ctx)
	if err != nil {
		return err
	}

	program, err := l.compileFilter()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for _, key := range env.Keys() {
		e := entry{
			Key:    key,
			Value:  env.Get(key),
			Status: env.Status(key).String(),
		}

		keep, err := l.match(program, e)
		if err != nil {
			return err
		}

		if !keep {
			continue
		}

		fmt.Fprintf(w, "%s%s%s",
			renderKey(e.Key, l.Color),
			renderPunct("=", l.Color),
			e.Value,
		)

		if l.Status {
			fmt.Fprintf(w, " %s%s",
				renderPunct("# ", l.Color),
				renderStatus(env.Status(key), l.Color),
			)
		}

		fmt.Fprintln(w)
	}

	return nil
}

// compileFilter compiles the --filter expression, or returns nil when no
// filter was given. The program must evaluate to a boolean; key, value,
// and status are in scope:
//
//	denv list --filter 'key startsWith "DB_"'
//	denv list --filter 'status == "circular"'
func (l *List) compileFilter() (*vm.Program, error) {
	if l.Filter == "" {
		return nil, nil
	}

	program, err := expr.Compile(l.Filter, expr.Env(entry{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilterCompile.
			With(slog.String("filter", l.Filter)).
			Wrap(err)
	}

	return program, nil
}

// match reports whether the entry passes the filter program.
func (l *List) match(program *vm.Program, e entry) (bool, error) {
	if program == nil {
		return true, nil
	}

	result, err := expr.Run(program, e)
	if err != nil {
		return false, ErrFilterEvaluate.
			With(
				slog.String("filter", l.Filter),
				slog.String("key", e.Key),
			).
			Wrap(err)
	}

	keep, ok := result.(bool)

	return ok && keep, nil
}
