package normalizer

import "testing"

func TestCleanCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"plain number", "1234", 1234},
		{"thousands separators", "1.234.567", 1234567},
		{"apostrophes", "12'345", 12345},
		{"surrounding whitespace", " 42 ", 42},
		{"not a number", "N/A", 0},
		{"empty", "", 0},
		{"mixed garbage", "12abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCount(tt.raw); got != tt.want {
				t.Errorf("CleanCount(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSafeRatio(t *testing.T) {
	if got := SafeRatio(5, 10); got != 0.5 {
		t.Errorf("SafeRatio(5, 10) = %v, want 0.5", got)
	}
	if got := SafeRatio(100, 0); got != 0 {
		t.Errorf("SafeRatio(100, 0) = %v, want exactly 0", got)
	}
	if got := SafeRatio(0, 10); got != 0 {
		t.Errorf("SafeRatio(0, 10) = %v, want 0", got)
	}
}
