package glyphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Feature_CodeResolvesEscapes(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"plain text passes through", "sub a by a.sc;", "sub a by a.sc;"},
		{"newline escape", `sub a by b;\012sub c by d;`, "sub a by b;\nsub c by d;"},
		{"tab escape", `sub a\011by b;`, "sub a\tby b;"},
		{"typographic quotes normalize", `\U201Cquoted\U201D \U2018text\U2019`, `"quoted" 'text'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFeature("liga", tt.code)
			assert.Equal(t, tt.want, f.Code())
		})
	}
}

func Test_Class_CodeResolvesEscapes(t *testing.T) {
	c := NewClass("Uppercase", `A B C\012D E F`)
	assert.Equal(t, "A B C\nD E F", c.Code())
	assert.Equal(t, "Uppercase", c.Name)
}

func Test_Font_ClassesByName(t *testing.T) {
	font := NewFont()
	font.Classes().Append(NewClass("Uppercase", "A B C"), NewClass("Lowercase", "a b c"))

	upper := font.Classes().Get("Uppercase")
	require.NotNil(t, upper)
	assert.Same(t, font, upper.Parent())
	assert.Nil(t, font.Classes().Get("SmallCaps"))

	// Set keeps the slot position while swapping the class out.
	replacement := NewClass("Uppercase", "A B C D")
	require.NoError(t, font.Classes().Set("Uppercase", replacement))
	got, err := font.Classes().At(0)
	require.NoError(t, err)
	assert.Same(t, replacement, got)

	err = font.Classes().Set("SmallCaps", NewClass("SmallCaps", "a.sc"))
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, font.Classes().Remove("Uppercase"))
	assert.Equal(t, 1, font.Classes().Len())
	assert.Nil(t, replacement.Parent())
}

func Test_Font_FeaturesAndPrefixesByName(t *testing.T) {
	font := NewFont()
	font.Features().Append(NewFeature("liga", "sub f i by fi;"))
	font.FeaturePrefixes().Append(NewFeaturePrefix("Languagesystems", "languagesystem DFLT dflt;"))

	liga := font.Features().Get("liga")
	require.NotNil(t, liga)
	assert.Same(t, font, liga.Parent())
	assert.Nil(t, font.Features().Get("calt"))

	prefix := font.FeaturePrefixes().Get("Languagesystems")
	require.NotNil(t, prefix)
	assert.Same(t, font, prefix.Parent())
}

func Test_Feature_EmptyCodeIsNotWritten(t *testing.T) {
	f := NewFeature("liga", "")
	f.Automatic = true

	tree := encodeFields(f, featureFields)
	_, hasCode := tree.Get("code")
	assert.False(t, hasCode)
	_, hasName := tree.Get("name")
	assert.True(t, hasName)
}
