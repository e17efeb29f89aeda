package dotenv

import (
	"context"
	"testing"
)

func TestFinalize_Interpolation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		braceless bool
		key       string
		want      string
		status    Status
	}{
		{
			name:   "no references",
			input:  "A=x",
			key:    "A",
			want:   "x",
			status: StatusCopied,
		},
		{
			name:   "forward reference",
			input:  "A=${B}\nB=x",
			key:    "A",
			want:   "x",
			status: StatusInterpolated,
		},
		{
			name:   "backward reference",
			input:  "B=x\nA=${B}",
			key:    "A",
			want:   "x",
			status: StatusInterpolated,
		},
		{
			name:   "chained references",
			input:  "A=${B}\nB=${C}\nC=v",
			key:    "A",
			want:   "v",
			status: StatusInterpolated,
		},
		{
			name:   "multiple references in one value",
			input:  "X=${A}-${B}\nA=1\nB=2",
			key:    "X",
			want:   "1-2",
			status: StatusInterpolated,
		},
		{
			name:   "reference embedded in text",
			input:  "URL=http://${HOST}:${PORT}/\nHOST=localhost\nPORT=8080",
			key:    "URL",
			want:   "http://localhost:8080/",
			status: StatusInterpolated,
		},
		{
			name:   "interior spaces in reference",
			input:  "A=${ B }\nB=x",
			key:    "A",
			want:   "x",
			status: StatusInterpolated,
		},
		{
			name:   "unknown reference left literal",
			input:  "A=${NOPE}",
			key:    "A",
			want:   "${NOPE}",
			status: StatusCopied,
		},
		{
			name:   "empty reference left literal",
			input:  "A=${}",
			key:    "A",
			want:   "${}",
			status: StatusCopied,
		},
		{
			name:   "single quotes suppress interpolation",
			input:  "A='${B}'\nB=x",
			key:    "A",
			want:   "${B}",
			status: StatusCopied,
		},
		{
			name:   "escaped dollar suppresses interpolation",
			input:  "A=\\${B}\nB=x",
			key:    "A",
			want:   `\${B}`,
			status: StatusCopied,
		},
		{
			name:   "reference inside double quotes",
			input:  "A=\"${B}!\"\nB=x",
			key:    "A",
			want:   "x!",
			status: StatusInterpolated,
		},
		{
			name:      "braceless reference",
			input:     "A=$B/bin\nB=/usr",
			braceless: true,
			key:       "A",
			want:      "/usr/bin",
			status:    StatusInterpolated,
		},
		{
			name:      "braceless at end of value",
			input:     "A=$B\nB=x",
			braceless: true,
			key:       "A",
			want:      "x",
			status:    StatusInterpolated,
		},
		{
			name:   "reference to empty value",
			input:  "A=<${B}>\nB=",
			key:    "A",
			want:   "<>",
			status: StatusInterpolated,
		},
		{
			name:   "shared value referenced twice",
			input:  "A=${C}${C}\nC=ab",
			key:    "A",
			want:   "abab",
			status: StatusInterpolated,
		},
		{
			name:   "diamond dependency",
			input:  "A=${B}${C}\nB=${D}\nC=${D}\nD=x",
			key:    "A",
			want:   "xx",
			status: StatusInterpolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := LoadString(
				context.Background(),
				tt.input,
				WithBracelessVariables(tt.braceless),
			)

			if got := env.Get(tt.key); got != tt.want {
				t.Errorf("value: expected %q, got %q", tt.want, got)
			}

			if got := env.Status(tt.key); got != tt.status {
				t.Errorf("status: expected %v, got %v", tt.status, got)
			}
		})
	}
}

func TestFinalize_CircularReferences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
		// keys expected to carry StatusCircular
		circular []string
	}{
		{
			name:     "self reference",
			input:    "A=${A}",
			want:     map[string]string{"A": "${A}"},
			circular: []string{"A"},
		},
		{
			name:  "mutual pair left literal",
			input: "A=${B}\nB=${A}",
			want: map[string]string{
				"A": "${B}",
				"B": "${A}",
			},
			circular: []string{"A", "B"},
		},
		{
			name:  "three way cycle",
			input: "A=${B}\nB=${C}\nC=${A}",
			want: map[string]string{
				"A": "${B}",
				"B": "${C}",
				"C": "${A}",
			},
			circular: []string{"A", "B", "C"},
		},
		{
			name:  "dependent of a cycle is circular",
			input: "C=${A}\nA=${A}",
			want: map[string]string{
				"C": "${A}",
				"A": "${A}",
			},
			circular: []string{"C", "A"},
		},
		{
			name:  "partial substitution kept beside cycle",
			input: "A=${A}${X}\nX=v",
			want: map[string]string{
				"A": "${A}v",
				"X": "v",
			},
			circular: []string{"A"},
		},
		{
			name:  "cycle does not poison unrelated keys",
			input: "A=${B}\nB=${A}\nC=${D}\nD=x",
			want: map[string]string{
				"A": "${B}",
				"B": "${A}",
				"C": "x",
				"D": "x",
			},
			circular: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := LoadString(context.Background(), tt.input)

			for key, want := range tt.want {
				if got := env.Get(key); got != want {
					t.Errorf("%s: expected %q, got %q", key, want, got)
				}
			}

			for _, key := range tt.circular {
				if got := env.Status(key); got != StatusCircular {
					t.Errorf("%s: expected circular status, got %v", key, got)
				}
			}
		})
	}
}

func TestFinalize_DuplicateKeys(t *testing.T) {
	env := LoadString(context.Background(), "A=1\nR=${A}\nA=2")

	if got := env.Get("A"); got != "2" {
		t.Errorf("duplicate key: expected last value %q, got %q", "2", got)
	}

	// References resolve against the last occurrence, independent of the
	// referencing record's position.
	if got := env.Get("R"); got != "2" {
		t.Errorf("reference to duplicate: expected %q, got %q", "2", got)
	}

	want := []string{"A", "R"}
	if got := env.Keys(); len(got) != len(want) ||
		got[0] != want[0] || got[1] != want[1] {
		t.Errorf("key order: expected %v, got %v", want, got)
	}
}

func TestFinalize_ConsumesRecords(t *testing.T) {
	records := ParseString(context.Background(), "A=x")
	_ = Finalize(context.Background(), records)

	if got := records[0].Raw(); got != "" {
		t.Errorf("expected consumed record to have empty raw value, got %q", got)
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusCopied, "copied"},
		{StatusInterpolated, "interpolated"},
		{StatusCircular, "circular"},
		{Status(99), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d): expected %q, got %q", int(tt.status), tt.want, got)
		}
	}
}
