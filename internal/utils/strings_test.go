package utils

import (
	"strings"
	"testing"
)

func TestTruncateStringShort(t *testing.T) {
	if got := TruncateString("hello", 10); got != "hello" {
		t.Errorf("short string should be unchanged, got %q", got)
	}
}

func TestTruncateStringLong(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := TruncateString(long, 100)
	if !strings.HasPrefix(got, strings.Repeat("a", 100)) {
		t.Errorf("truncated string should keep prefix")
	}
	if !strings.Contains(got, "total: 600 chars") {
		t.Errorf("truncated string should record original length, got %q", got)
	}
}

func TestTruncateStringDefault(t *testing.T) {
	long := strings.Repeat("b", DefaultMaxStringLength+1)
	got := TruncateStringDefault(long)
	if len(got) <= DefaultMaxStringLength {
		t.Errorf("expected suffix appended after truncation")
	}
	if !strings.Contains(got, "truncated") {
		t.Errorf("expected truncation marker, got %q", got)
	}
}
