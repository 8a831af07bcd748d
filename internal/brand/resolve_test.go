package brand

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := log.InitWriter(&buf)
	t.Cleanup(restore)
	return &buf
}

func sampleTokens() []ColorToken {
	return GenerateBrandColors("Acme", []RawColorDefinition{
		{TokenSpecificName: "Foo Slug", OKLCH: "oklch(0.6 0.2 250)", Category: CategoryColor, Roles: []Role{RolePrimary}},
		{TokenSpecificName: "White", OKLCH: "oklch(1 0 0)", Category: CategoryShade},
	})
}

func TestResolveAbstractColorRef(t *testing.T) {
	tokens := sampleTokens()

	tests := []struct {
		name    string
		ref     string
		want    string
		wantLog string
	}{
		{"raw name", "Foo Slug", "var(--foo-slug)", ""},
		{"qualified name", "Acme Foo Slug", "var(--foo-slug)", ""},
		{"step", "Foo Slug:dark", "var(--foo-slug-dark)", ""},
		{"explicit base", "Foo Slug:base", "var(--foo-slug)", ""},
		{"step on shade is not checked", "White:brighter", "var(--white-brighter)", ""},
		{"invalid step", "Foo Slug:bogus", "var(--foo-slug)", "invalid step key"},
		{"missing", "Missing", FallbackColorNotFound, "color reference not found"},
		{"missing with step", "Missing:dark", FallbackColorNotFound, "color reference not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			require.Equal(t, tt.want, ResolveAbstractColorRef(tt.ref, "Acme", tokens))

			if tt.wantLog == "" {
				require.Empty(t, buf.String())
				return
			}
			require.Contains(t, buf.String(), "[WARN] [tokens] "+tt.wantLog)
			require.Contains(t, buf.String(), "brand=Acme")
		})
	}
}

func TestResolveAbstractColorRef_FirstMatchWins(t *testing.T) {
	tokens := GenerateBrandColors("", []RawColorDefinition{
		{TokenSpecificName: "Twin", OKLCH: "oklch(0.1 0 0)"},
		{TokenSpecificName: "Twin", OKLCH: "oklch(0.9 0 0)"},
	})
	tokens[1].VariableName = "twin-2"

	require.Equal(t, "var(--twin)", ResolveAbstractColorRef("Twin", "b", tokens))
}

func TestSplitRef(t *testing.T) {
	name, step := SplitRef("Deep Sea:dark:extra")
	require.Equal(t, "Deep Sea", name)
	require.Equal(t, StepKey("dark:extra"), step)

	name, step = SplitRef("Deep Sea")
	require.Equal(t, "Deep Sea", name)
	require.Empty(t, step)
}

func TestVarTarget(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"var(--brand-blue)", "brand-blue", true},
		{"var(--a, red)", "", false},
		{"oklch(0.5 0 0)", "", false},
		{"var(--)", "", false},
		{"calc(var(--radius) - 2px)", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := VarTarget(tt.in)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
