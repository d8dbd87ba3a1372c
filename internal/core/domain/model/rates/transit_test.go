package rates_test

import (
	"testing"

	"shiprates/internal/core/domain/model/rates"

	"github.com/stretchr/testify/assert"
)

func TestParseTransitDays(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain digits", "3", 3},
		{"digits with unit", "3 days", 3},
		{"digits embedded in carrier enum", "THREE_DAYS is 3", 3},
		{"multi digit", "10 business days", 10},
		{"only the first digit run counts", "2 to 5 days", 2},
		{"word one", "one day", 1},
		{"word three", "three business days", 3},
		{"word ten", "ten days", 10},
		{"carrier enum spelling", "THREE_DAYS", 3},
		{"mixed case word", "Seven Days", 7},
		{"word beyond vocabulary", "twelve days", 1},
		{"zero digits clamp to one", "0 days", 1},
		{"unparseable text", "as soon as possible", 1},
		{"empty string", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rates.ParseTransitDays(tt.raw))
		})
	}
}
