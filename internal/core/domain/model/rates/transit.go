package rates

import (
	"strings"
	"unicode"
)

// DefaultTransitDays is assumed when a carrier transit description parses to
// nothing usable.
const DefaultTransitDays = 1

// transitWords is the fixed vocabulary of English day words accepted in
// carrier transit descriptions such as "three business days".
func transitWords() map[string]int {
	return map[string]int{
		"one":   1,
		"two":   2,
		"three": 3,
		"four":  4,
		"five":  5,
		"six":   6,
		"seven": 7,
		"eight": 8,
		"nine":  9,
		"ten":   10,
	}
}

// ParseTransitDays extracts a transit time in business days from carrier free
// text. Digit extraction wins ("3 DAYS", "THREE_DAYS with 3" both yield 3);
// otherwise the word vocabulary is consulted ("three days" yields 3); if
// neither parses, DefaultTransitDays is returned. The result is always at
// least one day.
//
// This is the one place carrier free text leaks into otherwise typed data,
// so it is deliberately total: any input yields a usable day count.
func ParseTransitDays(raw string) int {
	if days, ok := extractDigits(raw); ok {
		return clampDays(days)
	}

	lowered := strings.ToLower(raw)
	for _, token := range strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if days, ok := transitWords()[token]; ok {
			return days
		}
	}

	return DefaultTransitDays
}

// extractDigits returns the value of the first run of consecutive digits.
func extractDigits(raw string) (int, bool) {
	value := 0
	found := false
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			value = value*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return value, found
}

func clampDays(days int) int {
	if days < 1 {
		return DefaultTransitDays
	}
	return days
}
