package log

import (
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"  text  ", FormatText},
		{"bogus", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d): expected %q, got %q", int(tt.level), tt.want, got)
		}
	}
}

func TestConfig_Options(t *testing.T) {
	c := config{}

	c = WithLevel(LevelDebug)(c)
	if c.level != LevelDebug {
		t.Errorf("expected level debug, got %v", c.level)
	}

	c = WithFormat(FormatJSON)(c)
	if c.format != FormatJSON {
		t.Errorf("expected format json, got %v", c.format)
	}

	c = WithCaller(true)(c)
	if !c.caller {
		t.Error("expected caller enabled")
	}

	c = WithPretty(false)(c)
	if c.pretty {
		t.Error("expected pretty disabled")
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{
			name:   "rfc3339 named layout",
			layout: "RFC3339",
			want:   "2023-10-15T14:30:45Z",
		},
		{
			name:   "rfc3339 nano named layout",
			layout: "RFC3339Nano",
			want:   "2023-10-15T14:30:45.123456789Z",
		},
		{
			name:   "kitchen named layout",
			layout: "Kitchen",
			want:   "2:30PM",
		},
		{
			name:   "custom layout used verbatim",
			layout: "2006-01-02",
			want:   "2023-10-15",
		},
		{
			name:   "none disables timestamps",
			layout: "none",
			want:   "",
		},
		{
			name:   "empty disables timestamps",
			layout: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := makeFormatTimeFunc(tt.layout)

			if got := format(now); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
