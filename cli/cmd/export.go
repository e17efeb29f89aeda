package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/mung"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/denv/dotenv"
)

// Export renders the resolved environment in a machine-readable format.
type Export struct {
	Format    string   `default:"shell" enum:"shell,dotenv,json,yaml" help:"Output format" short:"o"`
	MergePath []string `help:"Merge the named PATH-style list with its process environment value" name:"merge-path" placeholder:"KEY"`
	Delim     string   `default:":" help:"List delimiter used by --merge-path"`
}

// Run executes the export command.
func (x *Export) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := loadEnv(ctx)
	if err != nil {
		return err
	}

	keys := env.Keys()
	values := x.mergedValues(env)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	switch x.Format {
	case "dotenv":
		return x.renderDotenv(w, keys, values)
	case "json":
		return x.renderJSON(w, keys, values)
	case "yaml":
		return x.renderYAML(w, keys, values)
	default:
		return x.renderShell(w, keys, values)
	}
}

// mergedValues returns the final value per key. Keys named by --merge-path
// have their resolved list elements prepended to the corresponding process
// environment value, with duplicate elements removed.
func (x *Export) mergedValues(env *dotenv.Env) map[string]string {
	values := make(map[string]string, env.Len())
	for key, value := range env.All() {
		values[key] = value
	}

	for _, key := range x.MergePath {
		value, ok := values[key]
		if !ok {
			continue
		}

		values[key] = mung.Make(
			mung.WithSubjectItems(os.Getenv(key)),
			mung.WithDelim(x.Delim),
			mung.WithPrefixItems(strings.Split(value, x.Delim)...),
		).String()
	}

	return values
}

// renderShell writes one "export KEY='value'" line per key, quoted for
// POSIX shells.
func (x *Export) renderShell(w io.Writer, keys []string, values map[string]string) error {
	for _, key := range keys {
		fmt.Fprintf(w, "export %s=%s\n", key, shellQuote(values[key]))
	}

	return nil
}

// renderDotenv writes one "KEY=value" line per key, double-quoted with
// escape sequences the parser itself accepts.
func (x *Export) renderDotenv(w io.Writer, keys []string, values map[string]string) error {
	for _, key := range keys {
		fmt.Fprintf(w, "%s=%s\n", key, dotenvQuote(values[key]))
	}

	return nil
}

// renderJSON writes a single JSON object, keys in appearance order.
func (x *Export) renderJSON(w io.Writer, keys []string, values map[string]string) error {
	fmt.Fprintln(w, "{")

	for i, key := range keys {
		k, err := json.Marshal(key)
		if err != nil {
			return ErrJSONMarshal.With(slog.String("key", key)).Wrap(err)
		}

		v, err := json.Marshal(values[key])
		if err != nil {
			return ErrJSONMarshal.With(slog.String("key", key)).Wrap(err)
		}

		sep := ","
		if i == len(keys)-1 {
			sep = ""
		}

		fmt.Fprintf(w, "  %s: %s%s\n", k, v, sep)
	}

	fmt.Fprintln(w, "}")

	return nil
}

// renderYAML writes a YAML mapping, keys in appearance order.
func (x *Export) renderYAML(w io.Writer, keys []string, values map[string]string) error {
	doc := make(yaml.MapSlice, 0, len(keys))
	for _, key := range keys {
		doc = append(doc, yaml.MapItem{Key: key, Value: values[key]})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(out)
	if err != nil {
		return ErrRenderOutput.Wrap(err)
	}

	return nil
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// dotenvQuote wraps s in double quotes using only escape sequences the
// dotenv parser recognizes, so the output parses back to the same value.
func dotenvQuote(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for i := range len(s) {
		switch b := s[i]; b {
		case '\\', '"':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(b)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}
