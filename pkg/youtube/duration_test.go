package youtube

import "testing"

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want int64
	}{
		{"hours minutes seconds", "PT2H3M4S", 2*3600 + 3*60 + 4},
		{"minutes seconds", "PT15M33S", 15*60 + 33},
		{"seconds only", "PT45S", 45},
		{"hours only", "PT3H", 3 * 3600},
		{"day and hours", "P1DT2H", 26 * 3600},
		{"weeks", "P1W", 7 * 24 * 3600},
		{"zero seconds", "PT0S", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationSeconds(tt.iso)
			if err != nil {
				t.Fatalf("ParseDurationSeconds(%q) failed: %v", tt.iso, err)
			}
			if got != tt.want {
				t.Errorf("ParseDurationSeconds(%q) = %d, want %d", tt.iso, got, tt.want)
			}
		})
	}
}

func TestParseDurationSecondsInvalid(t *testing.T) {
	for _, iso := range []string{"", "P", "PT", "2H3M", "PT2X", "garbage"} {
		if _, err := ParseDurationSeconds(iso); err == nil {
			t.Errorf("ParseDurationSeconds(%q) should fail", iso)
		}
	}
}
