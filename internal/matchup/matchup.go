// Package matchup parses listing matchup strings such as "LAL vs. BOS" and
// "BOS @ LAL" into home and away team codes.
package matchup

import "strings"

// Unknown is returned for both teams when a matchup cannot be parsed.
const Unknown = "Unknown"

const (
	homeSeparator = " vs. "
	awaySeparator = " @ "
)

// Parse returns the home and away codes encoded in a matchup string.
// "HOME vs. AWAY" and "AWAY @ HOME" are recognised; anything else yields
// (Unknown, Unknown).
func Parse(matchup string) (home, away string) {
	switch {
	case strings.Contains(matchup, homeSeparator):
		parts := strings.Split(matchup, homeSeparator)
		if len(parts) != 2 {
			return Unknown, Unknown
		}
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	case strings.Contains(matchup, "@"):
		parts := strings.Split(matchup, awaySeparator)
		if len(parts) != 2 {
			return Unknown, Unknown
		}
		return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0])
	default:
		return Unknown, Unknown
	}
}

// ParseValue is Parse for loosely typed listing cells.
func ParseValue(v any) (home, away string) {
	s, ok := v.(string)
	if !ok {
		return Unknown, Unknown
	}
	return Parse(s)
}
