package normalizer

import (
	"regexp"
	"strings"
)

// handshakeMarker and everything after it is co-branding noise appended
// to some titles ("... 🤝 SPONSOR").
const handshakeMarker = "🤝"

// Known "separator + brand + optional qualifier + #number" suffixes,
// stripped from the end of a cleaned title to leave the guest name (or
// free-form topic). Ordered most-specific first; a single combined
// expression applies them all.
var guestSuffixParts = []string{
	`\s*[-–]\s*PODPAH\s*(-\s*)?#\s*\d+\s*$`,
	`\s*[-–]\s*INTELIGÊNCIA\s*LTDA\.?\s*(PODCAST)?\s*#\s*\d+\s*$`,
	`\s*[-–]\s*FLOW\s*(-\s*)?#\s*\d+\s*$`,
	`\s*PODPAH\s*(-\s*)?#\s*\d+\s*$`,
	`\s*FLOW\s*(-\s*)?#\s*\d+\s*$`,
	`\s*INTELIGÊNCIA\s*LTDA\.?\s*#\s*\d+\s*$`,
	`\s*DE VERÃO\s*#\s*\d+\s*$`,
}

var guestSuffixRE = regexp.MustCompile(`(?i)(?:` + strings.Join(guestSuffixParts, "|") + `)`)

// CleanTitle uppercases the title, truncates at the handshake marker and
// trims surrounding whitespace.
func CleanTitle(title string) string {
	cleaned := strings.ToUpper(title)
	if idx := strings.Index(cleaned, handshakeMarker); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	return strings.TrimSpace(cleaned)
}

// GuestName strips a known brand/episode suffix from an already cleaned
// title. When no suffix matches, the full title is the guest field.
func GuestName(cleanedTitle string) string {
	stripped := guestSuffixRE.ReplaceAllString(strings.TrimSpace(cleanedTitle), "")
	return strings.TrimSpace(stripped)
}
