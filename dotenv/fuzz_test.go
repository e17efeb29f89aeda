package dotenv

import (
	"context"
	"testing"
)

func FuzzLoadString(f *testing.F) {
	// Seed corpus with one input per quoting and interpolation feature.
	f.Add("K=value")
	f.Add("K='single'")
	f.Add(`K="double"`)
	f.Add("K=`backtick`")
	f.Add("K='''here\ndoc'''")
	f.Add("K=\"\"\"here\ndoc\"\"\"")
	f.Add("K=''''extra''''")
	f.Add(`K="a\tb\\c\"d"`)
	f.Add("A=${B}\nB=x")
	f.Add("A=$B:${C}\nB=1\nC=2")
	f.Add("A=${A}")
	f.Add("A=${B}\nB=${A}")
	f.Add("A=${ B }\n# comment\nexport B=x")
	f.Add("K: colon\nK=1\r\n")
	f.Add("=\n==\n${}\n'\"`\\")
	f.Add("K='unterminated")

	f.Fuzz(func(t *testing.T, input string) {
		// Parsing and resolution must terminate without panicking on any
		// input, with every combination of behavior toggles.
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panicked on input %q: %v", input, r)
			}
		}()

		ctx := context.Background()

		for _, opts := range [][]Option{
			nil,
			{
				WithBracelessVariables(true),
				WithExportPrefix(true),
				WithColonSeparator(true),
			},
		} {
			env := LoadString(ctx, input, opts...)

			// Keys iterate uniquely and every key must be defined.
			seen := make(map[string]struct{}, env.Len())

			for _, key := range env.Keys() {
				if _, dup := seen[key]; dup {
					t.Errorf("duplicate key %q on input %q", key, input)
				}

				seen[key] = struct{}{}

				if _, ok := env.Lookup(key); !ok {
					t.Errorf("key %q not defined on input %q", key, input)
				}
			}
		}
	})
}
