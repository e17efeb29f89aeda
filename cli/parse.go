package cli

import (
	"github.com/alecthomas/kong"

	"github.com/ardnew/denv/dotenv"
	"github.com/ardnew/denv/log"
)

// parseConfig exposes the parser's behavior toggles as CLI flags shared by
// every subcommand.
type parseConfig struct {
	Braceless      bool `default:"false" help:"Recognize bare $name references in addition to ${name}." negatable:""`
	ExportPrefix   bool `default:"false" help:"Strip a leading 'export ' from keys."                    negatable:"" name:"export-prefix"`
	ColonSeparator bool `default:"false" help:"Accept ': ' as a key/value separator."                   negatable:"" name:"colon-separator"`
}

func (*parseConfig) group() kong.Group {
	var group kong.Group

	group.Key = "parse"
	group.Title = "Parsing options"

	return group
}

// options converts the parsed flags to parser options.
func (f *parseConfig) options() []dotenv.Option {
	return []dotenv.Option{
		dotenv.WithBracelessVariables(f.Braceless),
		dotenv.WithExportPrefix(f.ExportPrefix),
		dotenv.WithColonSeparator(f.ColonSeparator),
		dotenv.WithLogger(log.Default()),
	}
}
