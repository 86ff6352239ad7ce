package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosToDisplay(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{0, 2, "C1"},
		{2, 1, "B3"},
		{2, 2, "C3"},
		{3, 0, "??"},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, PosToDisplay(tt.row, tt.col), "PosToDisplay(%d, %d)", tt.row, tt.col)
	}
}

func TestParsePosRoundTrip(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			r, c, err := ParsePos(PosToDisplay(row, col))
			require.NoError(t, err)
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)
		}
	}
}

func TestParsePos(t *testing.T) {
	r, c, err := ParsePos(" b2 ")
	require.NoError(t, err)
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)

	for _, bad := range []string{"", "A", "A0", "A4", "D1", "1A", "A10", "??"} {
		_, _, err := ParsePos(bad)
		assert.ErrorIsf(t, err, ErrInvalidPos, "ParsePos(%q)", bad)
	}
}

func TestCellFromPoint(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		cellW, cellH int
		row, col     int
		ok           bool
	}{
		{"origin", 0, 0, 6, 3, 0, 0, true},
		{"inside first cell", 5, 2, 6, 3, 0, 0, true},
		{"second column", 6, 0, 6, 3, 0, 1, true},
		{"centre", 8, 4, 6, 3, 1, 1, true},
		{"last cell", 17, 8, 6, 3, 2, 2, true},
		{"right of grid", 18, 0, 6, 3, 0, 0, false},
		{"below grid", 0, 9, 6, 3, 0, 0, false},
		{"negative", -1, 0, 6, 3, 0, 0, false},
		{"zero cell size", 1, 1, 0, 3, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := CellFromPoint(tt.x, tt.y, tt.cellW, tt.cellH)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestKeypadPos(t *testing.T) {
	row, col, ok := KeypadPos('1')
	assert.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col, ok = KeypadPos('6')
	assert.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)

	row, col, ok = KeypadPos('9')
	assert.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 2, col)

	for _, r := range []rune{'0', 'a', ' '} {
		_, _, ok := KeypadPos(r)
		assert.False(t, ok)
	}
}
