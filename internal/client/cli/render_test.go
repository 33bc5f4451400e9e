package cli

import (
	"strings"
	"testing"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{1499, "1k"},
		{1500, "2k"},
		{9999, "10k"},
		{10000, "10k"},
		{99999, "10k"},
		{100000, "100k"},
		{2500000, "100k"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateTitle(t *testing.T) {
	short := "hello"
	if got := TruncateTitle(short); got != short {
		t.Fatalf("TruncateTitle(%q) = %q", short, got)
	}

	long := strings.Repeat("가", 30)
	got := TruncateTitle(long)
	if r := []rune(got); len(r) != 26 {
		t.Fatalf("TruncateTitle length = %d, want 26", len(r))
	}
	if !strings.HasPrefix(long, got) {
		t.Fatalf("TruncateTitle is not a prefix")
	}
}
