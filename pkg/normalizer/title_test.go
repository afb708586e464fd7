package normalizer

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"uppercases and trims", "  João Silva - Podpah #495  ", "JOÃO SILVA - PODPAH #495"},
		{"truncates at handshake", "João Silva - Podpah #495 🤝 Patrocinador", "JOÃO SILVA - PODPAH #495"},
		{"handshake at start", "🤝 Patrocinador", ""},
		{"no marker", "RODRIGO CONSTANTINO", "RODRIGO CONSTANTINO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.title); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestGuestName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"dash flow suffix", "JOÃO SILVA - FLOW #99", "JOÃO SILVA"},
		{"dash podpah suffix", "MARIA - PODPAH - #495", "MARIA"},
		{"ltda with qualifier", "FULANO - INTELIGÊNCIA LTDA. PODCAST #77", "FULANO"},
		{"ltda without dot", "FULANO - INTELIGÊNCIA LTDA #77", "FULANO"},
		{"verao suffix", "CONVIDADA DE VERÃO #405", "CONVIDADA"},
		{"suffix without dash", "BELTRANO PODPAH #10", "BELTRANO"},
		{"title is only the suffix", "PODPAH #10", ""},
		{"no suffix keeps everything", "RODRIGO CONSTANTINO", "RODRIGO CONSTANTINO"},
		{"flow podcast suffix not stripped", "FULANO - FLOW PODCAST #10", "FULANO - FLOW PODCAST #10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GuestName(tt.title); got != tt.want {
				t.Errorf("GuestName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
