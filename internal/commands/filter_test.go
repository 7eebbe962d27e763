package tally

import (
	"errors"
	"testing"

	"github.com/mwiater/tally/internal/filter"
)

func TestFilterCommand(t *testing.T) {
	configPath := writeTempConfig(t, "{}")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "greater than", stdin: "1\n5\n10", args: []string{"--greater-than=4"}, want: "5\n10\n"},
		{name: "negative bounds", stdin: "-2\n-1\n0\n1.0\n2\n", args: []string{"--greater-than", "-1", "--less-than", "1"}, want: "-1\n0\n1.0\n"},
		{name: "no bounds", stdin: "3\nx\n1e2\n", want: "3\n1e2\n"},
		{name: "stat flags ignored", stdin: "3\n", args: []string{"--count"}, want: "3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", configPath, "filter"}, tt.args...)
			out, err := execute(t, tt.stdin, args...)
			if err != nil {
				t.Fatalf("ExecuteC error: %v", err)
			}
			if out != tt.want {
				t.Fatalf("unexpected output %q, want %q", out, tt.want)
			}
		})
	}
}

func TestFilterInvalidBound(t *testing.T) {
	configPath := writeTempConfig(t, "{}")

	out, err := execute(t, "1\n", "--config", configPath, "filter", "--less-than", "abc")
	var cpe *filter.ConfigParseError
	if !errors.As(err, &cpe) {
		t.Fatalf("expected ConfigParseError, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}
