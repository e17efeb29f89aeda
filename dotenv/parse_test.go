package dotenv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/denv/pkg"
)

func TestParseString_Records(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  map[string]string
		keys  []string
	}{
		{
			name:  "multiple records",
			input: "A=1\nB=2\nC=3",
			want:  map[string]string{"A": "1", "B": "2", "C": "3"},
			keys:  []string{"A", "B", "C"},
		},
		{
			name:  "blank lines skipped",
			input: "A=1\n\n\nB=2\n",
			want:  map[string]string{"A": "1", "B": "2"},
			keys:  []string{"A", "B"},
		},
		{
			name:  "comment lines skipped",
			input: "# header\nA=1\n  # indented comment\nB=2",
			want:  map[string]string{"A": "1", "B": "2"},
			keys:  []string{"A", "B"},
		},
		{
			name:  "malformed line skipped",
			input: "not a record\nA=1",
			want:  map[string]string{"A": "1"},
			keys:  []string{"A"},
		},
		{
			name:  "garbage after closing quote discarded",
			input: "A='1' trailing garbage\nB=2",
			want:  map[string]string{"A": "1", "B": "2"},
			keys:  []string{"A", "B"},
		},
		{
			name:  "record follows multiline value",
			input: "A=\"x\ny\"\nB=2",
			want:  map[string]string{"A": "x\ny", "B": "2"},
			keys:  []string{"A", "B"},
		},
		{
			name:  "crlf line endings",
			input: "A=1\r\nB=2\r\n",
			want:  map[string]string{"A": "1", "B": "2"},
			keys:  []string{"A", "B"},
		},
		{
			name:  "export prefix disabled by default",
			input: "export A=1",
			want:  map[string]string{"export A": "1"},
			keys:  []string{"export A"},
		},
		{
			name:  "export prefix stripped",
			input: "export A=1\nB=2",
			opts:  []Option{WithExportPrefix(true)},
			want:  map[string]string{"A": "1", "B": "2"},
			keys:  []string{"A", "B"},
		},
		{
			name:  "colon separator disabled by default",
			input: "A: 1\nB=2",
			want:  map[string]string{"B": "2"},
			keys:  []string{"B"},
		},
		{
			name:  "colon separator enabled",
			input: "A: 1\nB=2",
			opts:  []Option{WithColonSeparator(true)},
			want:  map[string]string{"A": "1", "B": "2"},
			keys:  []string{"A", "B"},
		},
		{
			name:  "colon without space is not a separator",
			input: "A:1\nB=2",
			opts:  []Option{WithColonSeparator(true)},
			want:  map[string]string{"B": "2"},
			keys:  []string{"B"},
		},
		{
			name:  "equals preferred within colon key",
			input: "A:B=1",
			opts:  []Option{WithColonSeparator(true)},
			want:  map[string]string{"A:B": "1"},
			keys:  []string{"A:B"},
		},
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
			keys:  nil,
		},
		{
			name:  "comments only",
			input: "# a\n# b\n",
			want:  map[string]string{},
			keys:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := LoadString(context.Background(), tt.input, tt.opts...)

			if env.Len() != len(tt.keys) {
				t.Fatalf("expected %d keys %v, got %v", len(tt.keys), tt.keys, env.Keys())
			}

			for i, key := range tt.keys {
				if env.Keys()[i] != key {
					t.Errorf("key %d: expected %q, got %q", i, key, env.Keys()[i])
				}
			}

			for key, want := range tt.want {
				got, ok := env.Lookup(key)
				if !ok {
					t.Errorf("missing key %q", key)

					continue
				}

				if got != want {
					t.Errorf("%s: expected %q, got %q", key, want, got)
				}
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	records, err := ParseReader(context.Background(), strings.NewReader("A=1\nB=${A}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestParseReader_Error(t *testing.T) {
	_, err := ParseReader(context.Background(), failReader{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.Is(err, pkg.ErrReadInput) {
		t.Errorf("expected ErrReadInput in chain, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	env, err := Load(context.Background(), strings.NewReader("A=${B}\nB=x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := env.Get("A"); got != "x" {
		t.Errorf("expected %q, got %q", "x", got)
	}
}

func TestLoad_MultipleSourcesConcatenated(t *testing.T) {
	// Later sources override earlier ones when concatenated into a single
	// stream, matching how the CLI merges --source files.
	input := strings.NewReader("A=1\nB=${A}\n" + "A=2\n")

	env, err := Load(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := env.Get("A"); got != "2" {
		t.Errorf("A: expected %q, got %q", "2", got)
	}

	if got := env.Get("B"); got != "2" {
		t.Errorf("B: expected %q, got %q", "2", got)
	}
}
