package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Meadow", 10, "Meadow"},
		{"exact", "Meadow", 6, "Meadow"},
		{"cut", "Nordic Frost", 8, "Nordi..."},
		{"tiny", "Nordic Frost", 2, ".."},
		{"zero", "Nordic Frost", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TruncateString(tt.in, tt.width))
		})
	}
}

func TestFormatRating(t *testing.T) {
	r := 4.6
	require.Equal(t, "★ 4.6", FormatRating(&r))
	require.Equal(t, "unrated", FormatRating(nil))
}
