package glyphs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letterink/glyphsource/plist"
)

func Test_Point_ParseAndRender(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"integers", "{100, 200}", "{100, 200}"},
		{"negative", "{-15, 0}", "{-15, 0}"},
		{"fractions trimmed", "{12.50, 0.125}", "{12.5, 0.125}"},
		{"no braces accepted", "3, 4", "{3, 4}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePoint(tt.src)
			require.NoError(t, err)
			assert.False(t, p.IsZero())
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func Test_Point_ZeroVersusOrigin(t *testing.T) {
	var unset Point
	assert.True(t, unset.IsZero())

	origin := NewPoint(0, 0)
	assert.False(t, origin.IsZero(), "a point placed at the origin is set")
	assert.Equal(t, "{0, 0}", origin.String())
}

func Test_Point_ParseErrors(t *testing.T) {
	_, err := ParsePoint("{1}")
	require.Error(t, err)

	_, err = ParsePoint("{1, x}")
	require.Error(t, err)
}

func Test_Transform_Identity(t *testing.T) {
	m, err := ParseTransform("{1, 0, 0, 1, 0, 0}")
	require.NoError(t, err)
	assert.True(t, m.IsIdentity())

	shifted := ScaleOffset(1, 1, 20, -10)
	assert.False(t, shifted.IsIdentity())
	assert.Equal(t, "{1, 0, 0, 1, 20, -10}", shifted.String())
}

func Test_Color_Forms(t *testing.T) {
	index, err := ParseColor("3")
	require.NoError(t, err)
	i, ok := index.Index()
	require.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, 3, index.treeValue())

	comps, err := ParseColor(plist.Array{"250", "0", "10", "255"})
	require.NoError(t, err)
	assert.Equal(t, []int{250, 0, 10, 255}, comps.Components())
	_, ok = comps.Index()
	assert.False(t, ok)

	var unset Color
	assert.True(t, unset.IsZero())

	_, err = ParseColor(plist.Array{"red"})
	require.Error(t, err)
}

func Test_Time_RoundTrip(t *testing.T) {
	ts, err := ParseTime("2017-01-24 17:21:24 +0000")
	require.NoError(t, err)
	assert.Equal(t, "2017-01-24 17:21:24 +0000", ts.String())
	assert.Equal(t, 2017, ts.Time().Year())

	// Non-UTC input normalizes on render.
	local := NewTime(time.Date(2017, 1, 24, 18, 21, 24, 0, time.FixedZone("CET", 3600)))
	assert.Equal(t, "2017-01-24 17:21:24 +0000", local.String())

	var unset Time
	assert.True(t, unset.IsZero())

	_, err = ParseTime("yesterday")
	require.Error(t, err)
}

func Test_AlignmentZone_Render(t *testing.T) {
	zone, err := ParseAlignmentZone("{800, 16}")
	require.NoError(t, err)
	assert.Equal(t, 800.0, zone.Position)
	assert.Equal(t, 16.0, zone.Size)
	assert.Equal(t, "{800, 16}", zone.String())
}

func Test_HintTarget_Forms(t *testing.T) {
	up, err := ParseHintTarget("up")
	require.NoError(t, err)
	assert.Equal(t, HintSideUp, up.Side())
	assert.Equal(t, "up", up.String())

	point, err := ParseHintTarget("{1, 12}")
	require.NoError(t, err)
	assert.Equal(t, "", point.Side())
	assert.Equal(t, "{1, 12}", point.String())

	var unset HintTarget
	assert.True(t, unset.IsZero())
	assert.False(t, up.IsZero())

	_, err = ParseHintTarget("{1, 12, 3}")
	require.Error(t, err)
}

func Test_Node_ParseAndRender(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		ntype  string
		smooth bool
	}{
		{"line", "15 28 LINE", NodeLine, false},
		{"curve smooth", "12.5 -3 CURVE SMOOTH", NodeCurve, true},
		{"offcurve", "0 0 OFFCURVE", NodeOffCurve, false},
		{"qcurve", "7 7 QCURVE", NodeQCurve, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNode(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.ntype, n.Type)
			assert.Equal(t, tt.smooth, n.Smooth)
			assert.Equal(t, tt.src, n.String(), "render reproduces the source form")
		})
	}
}

func Test_Node_ParseErrors(t *testing.T) {
	for _, src := range []string{"", "15 LINE", "a b LINE", "1 2 WIGGLE"} {
		_, err := ParseNode(src)
		require.Error(t, err, "source %q", src)
	}
}
