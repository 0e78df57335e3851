package glyphs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewFont_Defaults(t *testing.T) {
	font := NewFont()

	assert.Equal(t, "Unnamed font", font.FamilyName)
	assert.Equal(t, 1000, font.UnitsPerEm)
	assert.Equal(t, 1, font.VersionMajor)
	assert.Equal(t, 0, font.VersionMinor())
	assert.Equal(t, 1, font.GridLength)
	assert.Equal(t, 1, font.GridSubDivision)
	assert.Equal(t, 0, font.Kerning().Len())
}

func Test_Font_VersionMinorRange(t *testing.T) {
	font := NewFont()

	require.NoError(t, font.SetVersionMinor(0))
	require.NoError(t, font.SetVersionMinor(999))
	assert.Equal(t, 999, font.VersionMinor())

	assert.ErrorIs(t, font.SetVersionMinor(1000), ErrVersionRange)
	assert.ErrorIs(t, font.SetVersionMinor(-1), ErrVersionRange)
	assert.Equal(t, 999, font.VersionMinor(), "rejected values leave the field alone")
}

func Test_Font_NoteIsParameterBacked(t *testing.T) {
	font := NewFont()
	assert.Equal(t, "", font.Note())

	require.NoError(t, font.SetNote("v2 wip"))
	assert.Equal(t, "v2 wip", font.Note())

	v, ok := font.CustomParameters().Get("note")
	require.True(t, ok)
	assert.Equal(t, "v2 wip", v.String())
}

func Test_Font_MasterForID(t *testing.T) {
	font := NewFont()
	m := NewFontMaster()
	m.ID = "M1"
	font.Masters().Append(m)

	assert.Same(t, m, font.MasterForID("M1"))
	assert.Nil(t, font.MasterForID("M2"))
	assert.Same(t, m, font.Masters().Get("M1"))
}

func Test_MastersProxy_GeneratesIDs(t *testing.T) {
	font := NewFont()
	m := NewFontMaster()
	require.Empty(t, m.ID)

	font.Masters().Append(m)
	assert.Len(t, m.ID, 36, "fresh uppercase UUID")
	assert.Same(t, font, m.Parent())

	kept := NewFontMaster()
	kept.ID = "CUSTOM"
	font.Masters().Append(kept)
	assert.Equal(t, "CUSTOM", kept.ID, "existing ids are kept")

	inserted := NewFontMaster()
	require.NoError(t, font.Masters().Insert(0, inserted))
	assert.NotEmpty(t, inserted.ID)
	got, err := font.Masters().At(0)
	require.NoError(t, err)
	assert.Same(t, inserted, got)
}

func Test_Font_KerningPairs(t *testing.T) {
	font := NewFont()

	_, ok := font.KerningForPair("M1", "@MMK_L_A", "V")
	assert.False(t, ok)

	font.SetKerningForPair("M1", "@MMK_L_A", "V", -120)
	got, ok := font.KerningForPair("M1", "@MMK_L_A", "V")
	require.True(t, ok)
	assert.Equal(t, -120.0, got)

	require.NoError(t, font.RemoveKerningForPair("M1", "@MMK_L_A", "V"))
	assert.ErrorIs(t, font.RemoveKerningForPair("M1", "@MMK_L_A", "V"), ErrNotFound)
	assert.Equal(t, 0, font.Kerning().Len(), "empty tables are pruned")
}

func Test_Font_SaveAndReload(t *testing.T) {
	font := NewFont()
	font.FamilyName = "Save Test"
	master := NewFontMaster()
	font.Masters().Append(master)

	assert.ErrorIs(t, font.Save(), ErrNoFilePath)

	path := filepath.Join(t.TempDir(), "save-test.glyphs")
	require.NoError(t, font.SaveAs(path))
	assert.Equal(t, path, font.FilePath())

	// Save now targets the remembered path.
	font.FamilyName = "Save Test 2"
	require.NoError(t, font.Save())

	reloaded, diags, err := Load(path)
	require.NoError(t, err)
	assert.True(t, diags.Empty())
	assert.Equal(t, "Save Test 2", reloaded.FamilyName)
	assert.Equal(t, path, reloaded.FilePath())
	assert.Equal(t, 1, reloaded.Masters().Len())

	_, err = os.Stat(path)
	require.NoError(t, err)
}
