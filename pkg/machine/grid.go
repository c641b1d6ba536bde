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

package machine

import (
	"strings"
)

// Program and data storage. Rows are indexed first: Grid[y][x].
type Grid [GRID_HEIGHT][GRID_WIDTH]rune

func InBounds(x, y int) bool {
	return x >= 0 && x < GRID_WIDTH && y >= 0 && y < GRID_HEIGHT
}

func (g *Grid) Clear() {
	for y := range g {
		for x := range g[y] {
			g[y][x] = OP_NOP
		}
	}
}

// Direct addressing never wraps; out of range reads report false
func (g *Grid) Get(x, y int) (rune, bool) {
	if !InBounds(x, y) {
		return 0, false
	}

	return g[y][x], true
}

func (g *Grid) Set(x, y int, value rune) bool {
	if !InBounds(x, y) {
		return false
	}

	g[y][x] = value
	return true
}

// Row y with trailing spaces removed
func (g *Grid) Row(y int) string {
	if y < 0 || y >= GRID_HEIGHT {
		return ""
	}

	return strings.TrimRight(string(g[y][:]), " ")
}

// The grid as program text, trailing blank rows and columns trimmed
func (g *Grid) String() string {
	rows := make([]string, GRID_HEIGHT)
	last := -1

	for y := range rows {
		rows[y] = g.Row(y)
		if rows[y] != "" {
			last = y
		}
	}

	return strings.Join(rows[:last+1], "\n")
}

type Cursor struct {
	X, Y   int
	DX, DY int
}

func (c *Cursor) Reset() {
	c.X, c.Y = 0, 0
	c.DX, c.DY = 1, 0
}

// Moves one cell along the direction vector. The grid is a torus, so each
// axis wraps independently.
func (c *Cursor) Advance() {
	c.X += c.DX
	c.Y += c.DY

	if c.X >= GRID_WIDTH {
		c.X = 0
	} else if c.X < 0 {
		c.X = GRID_WIDTH - 1
	}

	if c.Y >= GRID_HEIGHT {
		c.Y = 0
	} else if c.Y < 0 {
		c.Y = GRID_HEIGHT - 1
	}
}

// Number of cells before the cursor returns to its start along its direction
func (c *Cursor) Lap() int {
	if c.DX != 0 {
		return GRID_WIDTH
	}
	return GRID_HEIGHT
}

func (c *Cursor) Right() { c.DX, c.DY = 1, 0 }
func (c *Cursor) Left() { c.DX, c.DY = -1, 0 }
func (c *Cursor) Up() { c.DX, c.DY = 0, -1 }
func (c *Cursor) Down() { c.DX, c.DY = 0, 1 }
