package dotenv

import (
	"context"
	"slices"
	"testing"
)

func TestParseString_Spans(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		braceless bool
		raw       string
		refs      []string
	}{
		{
			name:  "braced reference",
			input: "A=${B}",
			raw:   "${B}",
			refs:  []string{"B"},
		},
		{
			name:  "multiple references",
			input: "A=${B}-${C}",
			raw:   "${B}-${C}",
			refs:  []string{"B", "C"},
		},
		{
			name:  "interior spaces trimmed from name",
			input: "A=${ B }",
			raw:   "${ B }",
			refs:  []string{"B"},
		},
		{
			name:  "spaces between dollar and brace",
			input: "A=$ {B}",
			raw:   "$ {B}",
			refs:  []string{"B"},
		},
		{
			name:  "empty name yields no reference",
			input: "A=${}",
			raw:   "${}",
			refs:  nil,
		},
		{
			name:  "escaped dollar is not a reference",
			input: `A=\${B}`,
			raw:   `\${B}`,
			refs:  nil,
		},
		{
			name:  "brace without dollar is not a reference",
			input: "A=x{B}",
			raw:   "x{B}",
			refs:  nil,
		},
		{
			name:  "no references inside single quotes",
			input: "A='${B}'",
			raw:   "${B}",
			refs:  nil,
		},
		{
			name:  "no references inside triple single heredoc",
			input: "A='''${B}'''",
			raw:   "${B}",
			refs:  nil,
		},
		{
			name:  "references inside double quotes",
			input: `A="${B}!"`,
			raw:   "${B}!",
			refs:  []string{"B"},
		},
		{
			name:  "references inside backticks",
			input: "A=`${B}`",
			raw:   "${B}",
			refs:  []string{"B"},
		},
		{
			name:  "unclosed reference dropped",
			input: "A=${B",
			raw:   "${B",
			refs:  nil,
		},
		{
			name:  "braceless ignored by default",
			input: "A=$B",
			raw:   "$B",
			refs:  nil,
		},
		{
			name:      "braceless reference at end of value",
			input:     "A=$B",
			braceless: true,
			raw:       "$B",
			refs:      []string{"B"},
		},
		{
			name:      "braceless reference ends at non-identifier",
			input:     "A=$B/bin",
			braceless: true,
			raw:       "$B/bin",
			refs:      []string{"B"},
		},
		{
			name:      "braceless and braced mix",
			input:     "A=$B:${C}",
			braceless: true,
			raw:       "$B:${C}",
			refs:      []string{"B", "C"},
		},
		{
			name:      "escaped dollar blocks braceless reference",
			input:     `A=\$B`,
			braceless: true,
			raw:       `\$B`,
			refs:      nil,
		},
		{
			name:      "underscore and digits in braceless name",
			input:     "A=$B_2/x",
			braceless: true,
			raw:       "$B_2/x",
			refs:      []string{"B_2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := parseOne(t, tt.input, WithBracelessVariables(tt.braceless))

			if got := rec.Raw(); got != tt.raw {
				t.Errorf("raw: expected %q, got %q", tt.raw, got)
			}

			if got := rec.Refs(); !slices.Equal(got, tt.refs) {
				t.Errorf("refs: expected %v, got %v", tt.refs, got)
			}
		})
	}
}

func TestParseString_SpanAcrossRecords(t *testing.T) {
	records := ParseString(context.Background(), "A=${B}\nB=${C}\nC=v")

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	for i, refs := range [][]string{{"B"}, {"C"}, nil} {
		if got := records[i].Refs(); !slices.Equal(got, refs) {
			t.Errorf("record %d refs: expected %v, got %v", i, refs, got)
		}
	}
}
