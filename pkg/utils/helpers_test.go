package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateRequestIDUnique(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestGenerateSearchIDPrefix(t *testing.T) {
	id := GenerateSearchID()
	if !strings.HasPrefix(id, "search_") {
		t.Errorf("unexpected id: %s", id)
	}
	if parts := strings.Split(id, "_"); len(parts) != 3 {
		t.Errorf("expected three segments, got %s", id)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "500ms"},
		{2500 * time.Millisecond, "2.50s"},
		{90 * time.Second, "1.5m"},
		{90 * time.Minute, "1.5h"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestGetStringOrDefault(t *testing.T) {
	if got := GetStringOrDefault("", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := GetStringOrDefault("value", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
}
