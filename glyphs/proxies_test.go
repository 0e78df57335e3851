package glyphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instanceFixture(t *testing.T, names ...string) (*Font, InstancesProxy) {
	t.Helper()
	font := NewFont()
	for _, name := range names {
		inst := NewInstance()
		inst.Name = name
		font.Instances().Append(inst)
	}
	return font, font.Instances()
}

func Test_ListProxy_NegativeIndices(t *testing.T) {
	_, instances := instanceFixture(t, "Light", "Regular", "Bold")

	first, err := instances.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Light", first.Name)

	last, err := instances.At(-1)
	require.NoError(t, err)
	assert.Equal(t, "Bold", last.Name)

	_, err = instances.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = instances.At(-4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func Test_ListProxy_InsertBounds(t *testing.T) {
	font, instances := instanceFixture(t, "Light", "Bold")

	middle := NewInstance()
	middle.Name = "Regular"
	require.NoError(t, instances.Insert(-1, middle))
	assert.Same(t, font, middle.Parent())

	tail := NewInstance()
	tail.Name = "Black"
	require.NoError(t, instances.Insert(instances.Len(), tail))

	var names []string
	for _, inst := range instances.All() {
		names = append(names, inst.Name)
	}
	assert.Equal(t, []string{"Light", "Regular", "Bold", "Black"}, names)

	err := instances.Insert(instances.Len()+1, NewInstance())
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func Test_ListProxy_RemoveDetaches(t *testing.T) {
	font, instances := instanceFixture(t, "Light", "Bold")

	light, err := instances.At(0)
	require.NoError(t, err)
	require.Same(t, font, light.Parent())

	require.NoError(t, instances.Remove(light))
	assert.Nil(t, light.Parent())
	assert.Equal(t, 1, instances.Len())

	err = instances.Remove(light)
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_ListProxy_ExtendAndReplace(t *testing.T) {
	font, instances := instanceFixture(t)

	a, b := NewInstance(), NewInstance()
	a.Name, b.Name = "Thin", "Heavy"
	instances.Extend([]*Instance{a, b})
	assert.Equal(t, 2, instances.Len())
	assert.Same(t, font, a.Parent())

	c := NewInstance()
	c.Name = "Medium"
	require.NoError(t, instances.Replace([]*Instance{c}))
	assert.Equal(t, 1, instances.Len())
	assert.Same(t, font, c.Parent())

	require.NoError(t, instances.Replace(nil))
	assert.Equal(t, 0, instances.Len())
}

func Test_Proxy_ReplaceRejectsForeignValues(t *testing.T) {
	font := NewFont()
	layer := NewLayer()

	assert.ErrorIs(t, font.Glyphs().Replace(42), ErrInvalidCollection)
	assert.ErrorIs(t, font.Masters().Replace("masters"), ErrInvalidCollection)
	assert.ErrorIs(t, layer.Anchors().Replace([]string{"top"}), ErrInvalidCollection)
}

func Test_UserDataProxy_CreatesStoreOnFirstWrite(t *testing.T) {
	font := NewFont()
	data := font.UserData()

	assert.Equal(t, 0, data.Len())
	_, ok := data.Get("com.example.tool")
	assert.False(t, ok)

	data.Set("com.example.tool", "v1")
	data.Set("com.example.other", "v2")

	got, ok := data.Get("com.example.tool")
	require.True(t, ok)
	assert.Equal(t, "v1", got)
	assert.Equal(t, []string{"com.example.tool", "com.example.other"}, data.Keys())

	assert.True(t, data.Delete("com.example.other"))
	assert.False(t, data.Delete("com.example.other"))
	assert.Equal(t, 1, data.Len())
}
