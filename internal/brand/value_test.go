package brand

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseStyleValue(t *testing.T) {
	tests := []struct {
		in   string
		want StyleValue
	}{
		{"", StyleValue{}},
		{"var(--brand-blue)", Literal("var(--brand-blue)")},
		{"0.5rem", Literal("0.5rem")},
		{"1px", Literal("1px")},
		{"2em", Literal("2em")},
		{"50%", Literal("50%")},
		{"solid", Literal("solid")},
		{"dashed", Literal("dashed")},
		{"rgba(0, 0, 0, 0.1)", Literal("rgba(0, 0, 0, 0.1)")},
		{"hsla(0, 0%, 0%, 0.1)", Literal("hsla(0, 0%, 0%, 0.1)")},
		{"Brand Blue", Ref("Brand Blue")},
		{"Brand Blue:dark", RefStep("Brand Blue", StepDark)},
		{"  Brand Blue  ", Ref("Brand Blue")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseStyleValue(tt.in))
		})
	}
}

func TestStyleValue_String(t *testing.T) {
	require.Equal(t, "Brand Blue:dark", RefStep("Brand Blue", StepDark).String())
	require.Equal(t, "Brand Blue", Ref("Brand Blue").String())
	require.Equal(t, "1px solid", Literal("1px solid").String())
	require.True(t, StyleValue{}.IsZero())
	require.Equal(t, Ref("b"), StyleValue{}.Or(Ref("b")))
	require.Equal(t, Ref("a"), Ref("a").Or(Ref("b")))
}

func TestStyleValue_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Scalar    StyleValue `yaml:"scalar"`
		Literal   StyleValue `yaml:"literal"`
		Ref       StyleValue `yaml:"ref"`
		Heuristic StyleValue `yaml:"heuristic"`
		Missing   StyleValue `yaml:"missing"`
	}
	src := `
scalar: Brand Blue:bright
literal: {literal: "oklch(0.5 0.1 20)"}
ref: {ref: Lemon Zest, step: dark}
heuristic: Lemon Zest
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	require.Equal(t, RefStep("Brand Blue", StepBright), doc.Scalar)
	require.Equal(t, Literal("oklch(0.5 0.1 20)"), doc.Literal)
	require.Equal(t, RefStep("Lemon Zest", StepDark), doc.Ref)
	// The scalar form classifies "Lemon Zest" as literal because it contains "em".
	require.True(t, doc.Heuristic.IsLiteral())
	require.True(t, doc.Missing.IsZero())
}

func TestStyleValue_UnmarshalYAML_Conflict(t *testing.T) {
	var v StyleValue
	err := yaml.Unmarshal([]byte("{literal: red, ref: Red}"), &v)
	require.Error(t, err)
	require.Contains(t, err.Error(), "both literal and ref")
}

func TestStyleValue_JSON(t *testing.T) {
	for _, v := range []StyleValue{Literal("1px solid"), RefStep("Brand Blue", StepDark), Ref("White")} {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var back StyleValue
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, v, back)
	}

	var v StyleValue
	require.NoError(t, json.Unmarshal([]byte(`"0.5rem"`), &v))
	require.Equal(t, Literal("0.5rem"), v)
}
