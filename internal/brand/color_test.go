package brand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOKLCH(t *testing.T) {
	tests := []struct {
		in     string
		want   OKLCH
		wantOK bool
	}{
		{"oklch(0.6 0.2 250)", OKLCH{0.6, 0.2, 250}, true},
		{"oklch(62% 0.1 30deg)", OKLCH{0.62, 0.1, 30}, true},
		{"OKLCH(1 0 0 / 0.5)", OKLCH{1, 0, 0}, true},
		{"oklch(0.5 none none)", OKLCH{0.5, 0, 0}, true},
		{"  oklch(0.95 0.01 90)  ", OKLCH{0.95, 0.01, 90}, true},
		{"#ffffff", OKLCH{}, false},
		{"oklch(0.5 0.1)", OKLCH{}, false},
		{"oklch(a b c)", OKLCH{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOKLCH(tt.in)
			require.Equal(t, tt.wantOK, ok)
			require.InDelta(t, tt.want.L, got.L, 1e-9)
			require.InDelta(t, tt.want.C, got.C, 1e-9)
			require.InDelta(t, tt.want.H, got.H, 1e-9)
		})
	}
}

func TestReadableForeground(t *testing.T) {
	tests := []struct {
		name  string
		oklch string
		want  string
	}{
		{"near white card", "oklch(0.95 0.01 90)", NearBlack},
		{"pure white", "oklch(1 0 0)", NearBlack},
		{"light gray without nines", "oklch(0.82 0 0)", NearBlack},
		{"dark navy", "oklch(0.25 0.05 260)", NearWhite},
		{"mid blue", "oklch(0.45 0.2 260)", NearWhite},
		{"percent lightness", "oklch(97% 0 0)", NearBlack},
		{"unknown lightness", "var(--somewhere)", NearWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := CreateColorToken(RawColorDefinition{TokenSpecificName: "Surface", OKLCH: tt.oklch}, "")
			require.Equal(t, tt.want, ReadableForeground(token))
		})
	}
}

func TestReadableForeground_ExplicitLightness(t *testing.T) {
	l := 0.97
	token := CreateColorToken(RawColorDefinition{
		TokenSpecificName: "Paper",
		OKLCH:             "color(display-p3 1 1 0.98)",
		Lightness:         &l,
	}, "")
	require.Equal(t, NearBlack, ReadableForeground(token))
}

func TestContrastRatio(t *testing.T) {
	white := OKLCH{L: 1}
	black := OKLCH{L: 0}
	require.InDelta(t, 21.0, ContrastRatio(white, black), 0.1)
	require.InDelta(t, 1.0, ContrastRatio(white, white), 1e-9)
	require.Equal(t, ContrastRatio(white, black), ContrastRatio(black, white))
}

func TestOKLCH_Hex(t *testing.T) {
	require.Equal(t, "#ffffff", OKLCH{L: 1}.Hex())
	require.Equal(t, "#000000", OKLCH{L: 0}.Hex())
}
