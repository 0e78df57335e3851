package plist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NeedsQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Regular", false},
		{"dollar.ss01", false},
		{"_part.something", false},
		{"00E4", false},
		{"1000", false},
		{"", true},
		{"Bold Italic", true},
		{"a-cy", true},
		{"say \"hi\"", true},
		{"M1;x", true},
		{"ä", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsQuotes(tt.in))
		})
	}
}

func Test_QuoteString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Bold Italic", `"Bold Italic"`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"newline", "a\nb", `"a\012b"`},
		{"tab", "a\tb", `"a\011b"`},
		{"kept backslash", `a\012b`, `"a\012b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteString(tt.in))
		})
	}
}

func Test_FloatString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{-20, "-20"},
		{2.5, "2.5"},
		{-0.25, "-0.25"},
		{0.125, "0.125"},
		{0.375, "0.375"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FloatString(tt.in))
		})
	}
}

func Test_FeatureText(t *testing.T) {
	encoded := `sub a by b;\012sub c by d;\011# it\U2019s \U201Cfine\U201D`
	want := "sub a by b;\nsub c by d;\t# it's \"fine\""

	assert.Equal(t, want, DecodeFeatureText(encoded))
	assert.Equal(t, "plain", DecodeFeatureText("plain"))
}

func Test_EncodeFeatureText(t *testing.T) {
	assert.Equal(t, "liga", EncodeFeatureText("liga"))
	assert.Equal(t, `"sub a by b;\012"`, EncodeFeatureText("sub a by b;\n"))
}

func Test_ParseIntList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []int
	}{
		{"array of scalars", Array{"1", "2", "3"}, []int{1, 2, 3}},
		{"single scalar", "8", []int{8}},
		{"comma string", "1,2,3", []int{1, 2, 3}},
		{"parenthesized string", "(2, 11, 5)", []int{2, 11, 5}},
		{"native ints", Array{1, 2}, []int{1, 2}},
		{"empty array", Array{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntList(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseIntList(Array{"x"})
	assert.Error(t, err)
}

func Test_IntStrings(t *testing.T) {
	assert.Equal(t, []string{"1", "-2", "0"}, IntStrings([]int{1, -2, 0}))
	assert.Empty(t, IntStrings(nil))
}
