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

const (
	GRID_WIDTH  int = 80
	GRID_HEIGHT int = 25
)

const (
	OP_RIGHT   rune = '>'
	OP_LEFT    rune = '<'
	OP_UP      rune = '^'
	OP_DOWN    rune = 'v'
	OP_RANDOM  rune = '?'
	OP_ADD     rune = '+'
	OP_SUB     rune = '-'
	OP_MUL     rune = '*'
	OP_DIV     rune = '/'
	OP_MOD     rune = '%'
	OP_NOT     rune = '!'
	OP_GT      rune = '`'
	OP_HIF     rune = '_'
	OP_VIF     rune = '|'
	OP_STRING  rune = '"'
	OP_DUP     rune = ':'
	OP_SWAP    rune = '\\'
	OP_POP     rune = '$'
	OP_OUTINT  rune = '.'
	OP_OUTCHAR rune = ','
	OP_BRIDGE  rune = '#'
	OP_GET     rune = 'g'
	OP_PUT     rune = 'p'
	OP_ININT   rune = '&'
	OP_INCHAR  rune = '~'
	OP_END     rune = '@'
	OP_NOP     rune = ' '
)

const (
	PROMPT_INT  = "Enter integer: "
	PROMPT_CHAR = "Enter ASCII character: "
)

// Pushed by '~' when the input hook returns nothing
const INPUT_EOF int = -1

const (
	STATE_NOTLOADED RunState = iota
	STATE_READY
	STATE_RUNNING
	STATE_HALTED
)
