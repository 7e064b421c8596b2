package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	red color = iota
	green
	blue
)

func newColors() *Table[color] {
	return New(
		Entry[color]{Value: red, Code: "red", Label: "Red"},
		Entry[color]{Value: green, Code: "green"},
		Entry[color]{Value: blue, Code: "blue", Label: "Blue"},
	)
}

func TestTable_RoundTrip(t *testing.T) {
	table := newColors()

	for _, v := range table.Values() {
		parsed, ok := table.Parse(table.Code(v))
		require.True(t, ok)
		assert.Equal(t, v, parsed)
	}
	assert.Equal(t, 3, table.Len())
}

func TestTable_ParseUnknown(t *testing.T) {
	table := newColors()

	_, ok := table.Parse("purple")
	assert.False(t, ok)

	_, ok = table.Parse("Red")
	assert.False(t, ok, "parsing is case sensitive")
}

func TestTable_Label(t *testing.T) {
	table := newColors()

	assert.Equal(t, "Red", table.Label(red))
	assert.Equal(t, "green", table.Label(green), "label falls back to code")
	assert.Equal(t, "", table.Label(color(42)))
	assert.Equal(t, "", table.Code(color(42)))
	assert.False(t, table.Contains(color(42)))
}

func TestTable_CodesInDeclarationOrder(t *testing.T) {
	assert.Equal(t, []string{"red", "green", "blue"}, newColors().Codes())
}

func TestNew_PanicsOnDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		New(
			Entry[color]{Value: red, Code: "red"},
			Entry[color]{Value: green, Code: "red"},
		)
	})
	assert.Panics(t, func() {
		New(
			Entry[color]{Value: red, Code: "red"},
			Entry[color]{Value: red, Code: "crimson"},
		)
	})
}
