package ui

import (
	"bytes"
	"testing"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   OutputMode
	}{
		{"json format", "json", OutputModeJSON},
		{"table format", "table", OutputModePlain},
		{"text to buffer", "text", OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectMode(&bytes.Buffer{}, tt.format); got != tt.want {
				t.Errorf("detectMode(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestNew_PlainStylesLeaveTextUnchanged(t *testing.T) {
	u := New(&bytes.Buffer{}, &bytes.Buffer{}, "text")

	if u.IsInteractive() || u.IsJSON() {
		t.Fatalf("expected plain mode, got %v", u.Mode)
	}
	if u.Styles.Enabled() {
		t.Error("styles should be disabled for non-TTY output")
	}
	for _, r := range []float64{0, 0.5, 1} {
		if got := u.Styles.Ratio(r).Render("0.50"); got != "0.50" {
			t.Errorf("Ratio(%v).Render() = %q, want plain text", r, got)
		}
	}
	if got := u.Styles.Metric.Render("laconicity"); got != "laconicity" {
		t.Errorf("Metric.Render() = %q, want plain text", got)
	}
}

func TestStylesRatio(t *testing.T) {
	s := NewStyles(true)

	if !s.Enabled() {
		t.Fatal("expected styles to be enabled")
	}
	if got := s.Ratio(1).GetForeground(); got != s.Full.GetForeground() {
		t.Errorf("Ratio(1) foreground = %v, want %v", got, s.Full.GetForeground())
	}
	if got := s.Ratio(0).GetForeground(); got != s.None.GetForeground() {
		t.Errorf("Ratio(0) foreground = %v, want %v", got, s.None.GetForeground())
	}
	if got := s.Ratio(0.3).GetForeground(); got != s.Partial.GetForeground() {
		t.Errorf("Ratio(0.3) foreground = %v, want %v", got, s.Partial.GetForeground())
	}
}
