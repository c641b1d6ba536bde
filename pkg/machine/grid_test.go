// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/gobefunge/pkg/machine"
)

func TestCursorWraps(t *testing.T) {
	tests := []struct {
		Name  string
		Start machine.Cursor
		X, Y  int
	}{
		{"Right edge", machine.Cursor{X: 79, Y: 3, DX: 1}, 0, 3},
		{"Left edge", machine.Cursor{X: 0, Y: 3, DX: -1}, 79, 3},
		{"Bottom edge", machine.Cursor{X: 5, Y: 24, DY: 1}, 5, 0},
		{"Top edge", machine.Cursor{X: 5, Y: 0, DY: -1}, 5, 24},
		{"Interior", machine.Cursor{X: 40, Y: 12, DX: 1}, 41, 12},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			cursor := test.Start
			cursor.Advance()
			assert.Equal(t, test.X, cursor.X)
			assert.Equal(t, test.Y, cursor.Y)
		})
	}
}

func TestCursorFullLap(t *testing.T) {
	cursor := machine.Cursor{X: 7, Y: 9}
	cursor.Left()

	for i := 0; i < cursor.Lap(); i++ {
		cursor.Advance()
	}
	assert.Equal(t, machine.Cursor{X: 7, Y: 9, DX: -1}, cursor)

	cursor.Down()
	for i := 0; i < cursor.Lap(); i++ {
		cursor.Advance()
	}
	assert.Equal(t, machine.Cursor{X: 7, Y: 9, DY: 1}, cursor)
}

func TestCursorDirections(t *testing.T) {
	var cursor machine.Cursor

	cursor.Up()
	assert.Equal(t, [2]int{0, -1}, [2]int{cursor.DX, cursor.DY})
	cursor.Left()
	assert.Equal(t, [2]int{-1, 0}, [2]int{cursor.DX, cursor.DY})
	cursor.Down()
	assert.Equal(t, [2]int{0, 1}, [2]int{cursor.DX, cursor.DY})
	cursor.Right()
	assert.Equal(t, [2]int{1, 0}, [2]int{cursor.DX, cursor.DY})
}

func TestGridBounds(t *testing.T) {
	var grid machine.Grid
	grid.Clear()

	assert.True(t, grid.Set(79, 24, 'z'))
	value, ok := grid.Get(79, 24)
	assert.True(t, ok)
	assert.Equal(t, 'z', value)

	for _, coord := range [][2]int{{80, 0}, {0, 25}, {-1, 0}, {0, -1}, {80, 25}} {
		assert.False(t, grid.Set(coord[0], coord[1], 'q'), "Set %v", coord)

		value, ok := grid.Get(coord[0], coord[1])
		assert.False(t, ok, "Get %v", coord)
		assert.Equal(t, rune(0), value, "Get %v", coord)
	}
}

func TestGridString(t *testing.T) {
	var grid machine.Grid
	grid.Clear()
	assert.Equal(t, "", grid.String())

	grid.Set(2, 0, 'a')
	grid.Set(0, 3, 'b')
	assert.Equal(t, "  a\n\n\nb", grid.String())
	assert.Equal(t, "", grid.Row(1))
	assert.Equal(t, "", grid.Row(25))
}

func TestStack(t *testing.T) {
	var stack machine.Stack

	assert.Equal(t, 0, stack.Pop())
	assert.Equal(t, 0, stack.Len())
	assert.Equal(t, 0, stack.Peek())

	stack.Push(3)
	stack.Push(-8)
	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, -8, stack.Peek())

	snapshot := stack.Snapshot()
	stack.Push(11)
	assert.Equal(t, []int{3, -8}, snapshot)

	assert.Equal(t, 11, stack.Pop())
	assert.Equal(t, -8, stack.Pop())
	assert.Equal(t, 3, stack.Pop())
	assert.Equal(t, 0, stack.Pop())
	assert.Equal(t, 0, stack.Len())

	stack.Push(1)
	stack.Clear()
	assert.Equal(t, 0, stack.Len())
}

func TestRunStateString(t *testing.T) {
	assert.Equal(t, "not loaded", machine.STATE_NOTLOADED.String())
	assert.Equal(t, "ready", machine.STATE_READY.String())
	assert.Equal(t, "running", machine.STATE_RUNNING.String())
	assert.Equal(t, "halted", machine.STATE_HALTED.String())
	assert.Equal(t, "RunState(9)", machine.RunState(9).String())
}
