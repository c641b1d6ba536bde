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
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/lassandro/gobefunge/pkg/encoding"
)

var ErrTooLarge = errors.New("Program exceeds the 80x25 grid")

// Returned by step budgets installed through Hooks.Tick
var ErrStepLimit = errors.New("Step limit reached")

type LoadError struct {
	Row   int
	Width int
}

func (err *LoadError) Error() string {
	if err.Row >= GRID_HEIGHT {
		return fmt.Sprintf(
			"%s: row %d is past the last row (%d)",
			ErrTooLarge, err.Row+1, GRID_HEIGHT,
		)
	}

	return fmt.Sprintf(
		"%s: row %d is %d columns wide (max %d)",
		ErrTooLarge, err.Row+1, err.Width, GRID_WIDTH,
	)
}

func (err *LoadError) Unwrap() error {
	return ErrTooLarge
}

func (mc *MachineState) Reset() {
	mc.Grid.Clear()
	mc.Stack = mc.Stack[:0]
	mc.Cursor.Reset()
	mc.StringMode = false
	mc.Output = mc.Output[:0]
	mc.Status = STATE_NOTLOADED
}

// Returns the machine to its initial state. Hooks, debugger and random
// source are kept.
func (mc *Machine) Reset() {
	mc.State.Reset()
}

// Replaces the program. The text is checked against the grid size before
// anything is modified, so a rejected program leaves the machine untouched.
func (mc *Machine) Load(text string) error {
	lines := encoding.SplitLines(text)

	for y, line := range lines {
		width := utf8.RuneCountInString(line)

		if y >= GRID_HEIGHT && width > 0 {
			return &LoadError{Row: y, Width: width}
		}

		if width > GRID_WIDTH {
			return &LoadError{Row: y, Width: width}
		}
	}

	mc.State.Reset()

	for y, line := range lines {
		if y >= GRID_HEIGHT {
			break
		}

		x := 0
		for _, r := range line {
			mc.State.Grid[y][x] = r
			x++
		}
	}

	mc.State.Status = STATE_READY

	return nil
}

func (mc *Machine) LoadReader(reader io.Reader) error {
	data, err := io.ReadAll(reader)

	if err != nil {
		return err
	}

	return mc.Load(string(data))
}

func (mc *Machine) push(value int) {
	mc.State.Stack.Push(value)
	mc.stackChanged()
}

func (mc *Machine) pop() int {
	value := mc.State.Stack.Pop()
	mc.stackChanged()
	return value
}

func (mc *Machine) stackChanged() {
	if mc.IgnoreCallbacks || mc.Hooks.StackChange == nil {
		return
	}

	mc.Hooks.StackChange(mc.State.Stack.Snapshot())
}

func (mc *Machine) output(text string) {
	mc.State.Output = append(mc.State.Output, text...)

	if mc.IgnoreCallbacks || mc.Hooks.Output == nil {
		return
	}

	mc.Hooks.Output(text)
}

func (mc *Machine) input(prompt string) string {
	if mc.Hooks.Input == nil {
		return ""
	}

	return mc.Hooks.Input(prompt)
}

func (mc *Machine) advance() {
	mc.State.Cursor.Advance()

	if mc.IgnoreCallbacks || mc.Hooks.Step == nil {
		return
	}

	mc.Hooks.Step(mc.State.Cursor.X, mc.State.Cursor.Y)
}

// Picks one of the four directions with a single uniform draw
func (mc *Machine) RandomDirection() {
	if mc.Rand == nil {
		mc.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch mc.Rand.Intn(4) {
	case 0:
		mc.State.Cursor.Left()
	case 1:
		mc.State.Cursor.Right()
	case 2:
		mc.State.Cursor.Up()
	case 3:
		mc.State.Cursor.Down()
	}
}

func (mc *Machine) put() {
	y := mc.pop()
	x := mc.pop()
	v := mc.pop() % 256

	if v < 0 {
		v += 256
	}

	value := rune(v)

	if !mc.State.Grid.Set(x, y, value) {
		return
	}

	if !mc.IgnoreCallbacks && mc.Hooks.CellChange != nil {
		mc.Hooks.CellChange(x, y, value)
	}

	if mc.Debugger != nil {
		mc.Debugger.Write(x, y, mc)
	}
}

func (mc *Machine) get() {
	y := mc.pop()
	x := mc.pop()

	// Out of range reads push 0
	value, _ := mc.State.Grid.Get(x, y)
	mc.push(int(value))

	if mc.Debugger != nil && InBounds(x, y) {
		mc.Debugger.Read(x, y, mc)
	}
}

// Interprets a single token against the current state. The cursor is not
// advanced except by the bridge.
func (mc *Machine) Execute(token rune) {
	if mc.State.StringMode {
		if token == OP_STRING {
			mc.State.StringMode = false
		} else if token <= 0xFF {
			mc.push(int(token))
		}
		return
	}

	if value, ok := encoding.DecodeHexDigit(token); ok {
		mc.push(value)
		return
	}

	switch token {
	// ' '  | no-op
	case OP_NOP:

	// '>'  | move right
	// '<'  | move left
	// '^'  | move up
	// 'v'  | move down
	// '?'  | move in a random direction
	case OP_RIGHT:
		mc.State.Cursor.Right()
	case OP_LEFT:
		mc.State.Cursor.Left()
	case OP_UP:
		mc.State.Cursor.Up()
	case OP_DOWN:
		mc.State.Cursor.Down()
	case OP_RANDOM:
		mc.RandomDirection()

	// '+'  | a b -- a+b
	// '-'  | a b -- a-b
	// '*'  | a b -- a*b
	case OP_ADD:
		b, a := mc.pop(), mc.pop()
		mc.push(a + b)
	case OP_SUB:
		b, a := mc.pop(), mc.pop()
		mc.push(a - b)
	case OP_MUL:
		b, a := mc.pop(), mc.pop()
		mc.push(a * b)

	// '/'  | a b -- a/b, truncated toward zero; 0 when b is 0
	case OP_DIV:
		b, a := mc.pop(), mc.pop()
		if b != 0 {
			mc.push(a / b)
		} else {
			mc.push(0)
		}

	// '%'  | a b -- a%b, sign of a
	case OP_MOD:
		b, a := mc.pop(), mc.pop()
		if b != 0 {
			mc.push(a % b)
		} else {
			// Integer remainder by zero has no value in Go; the
			// result is 0 rather than a runtime panic.
			mc.push(0)
		}

	// '!'  | a -- 1 if a is 0, else 0
	case OP_NOT:
		if mc.pop() == 0 {
			mc.push(1)
		} else {
			mc.push(0)
		}

	// '`'  | a b -- 1 if a > b, else 0
	case OP_GT:
		b, a := mc.pop(), mc.pop()
		if a > b {
			mc.push(1)
		} else {
			mc.push(0)
		}

	// '_'  | a -- ; left if a != 0, else right
	case OP_HIF:
		if mc.pop() != 0 {
			mc.State.Cursor.Left()
		} else {
			mc.State.Cursor.Right()
		}

	// '|'  | a -- ; up if a != 0, else down
	case OP_VIF:
		if mc.pop() != 0 {
			mc.State.Cursor.Up()
		} else {
			mc.State.Cursor.Down()
		}

	// '"'  | enter string mode
	case OP_STRING:
		mc.State.StringMode = true

	// ':'  | a -- a a
	case OP_DUP:
		a := mc.pop()
		mc.push(a)
		mc.push(a)

	// '\'  | a b -- b a
	case OP_SWAP:
		b, a := mc.pop(), mc.pop()
		mc.push(b)
		mc.push(a)

	// '$'  | a --
	case OP_POP:
		mc.pop()

	// '.'  | a -- ; output a as a decimal integer
	// ','  | a -- ; output a as a character
	case OP_OUTINT:
		mc.output(strconv.Itoa(mc.pop()))
	case OP_OUTCHAR:
		mc.output(string(rune(mc.pop())))

	// '#'  | skip the next cell
	case OP_BRIDGE:
		mc.advance()

	// 'g'  | x y -- grid[y][x]
	// 'p'  | v x y -- ; grid[y][x] = v
	case OP_GET:
		mc.get()
	case OP_PUT:
		mc.put()

	// '&'  | -- n ; read an integer
	// '~'  | -- c ; read a character
	case OP_ININT:
		mc.push(encoding.DecodeInt(mc.input(PROMPT_INT)))
	case OP_INCHAR:
		text := mc.input(PROMPT_CHAR)
		if len(text) == 0 {
			mc.push(INPUT_EOF)
		} else {
			r, _ := utf8.DecodeRuneInString(text)
			mc.push(int(r))
		}

	// '@'  | end the program
	case OP_END:
		mc.State.Status = STATE_HALTED

	// Anything else is ignored
	default:
	}
}

// Executes the cell under the cursor and advances. Outside string mode runs
// of blank cells that follow are skipped as part of the same step, so the
// cursor always rests on an instruction unless its whole lane is blank.
func (mc *Machine) StepInto() {
	for skipped := 0; ; skipped++ {
		token := mc.State.Grid[mc.State.Cursor.Y][mc.State.Cursor.X]

		if mc.State.StringMode {
			mc.Execute(token)
			mc.advance()
			break
		}

		if token != OP_NOP {
			mc.Execute(token)
		}

		mc.advance()

		next := mc.State.Grid[mc.State.Cursor.Y][mc.State.Cursor.X]
		if next != OP_NOP || skipped >= mc.State.Cursor.Lap() {
			break
		}
	}

	if mc.Debugger != nil {
		mc.Debugger.Step(mc)
	}
}

// Stops Run after the current step. Does nothing unless running.
func (mc *Machine) Pause() {
	if mc.State.Status == STATE_RUNNING {
		mc.State.Status = STATE_READY
	}
}

// Allows Run to continue. Does NOT execute anything by itself.
func (mc *Machine) Resume() {
	if mc.State.Status == STATE_READY {
		mc.State.Status = STATE_RUNNING
	}
}

// Loads and runs a program until it halts, returning everything it printed.
//
// There is no step limit: a program that never reaches '@' keeps Run busy
// forever. Callers that need a bound should return an error from Hooks.Tick
// (see StepLimit) or call Pause from a hook.
func (mc *Machine) Run(program string, reset bool) (string, error) {
	if reset {
		mc.Reset()
	}

	if err := mc.Load(program); err != nil {
		return "", err
	}

	return mc.Continue()
}

// Drives StepInto on the loaded program from wherever the cursor is
func (mc *Machine) Continue() (string, error) {
	mc.Resume()

	for mc.State.Status == STATE_RUNNING {
		if mc.Hooks.Tick != nil {
			if err := mc.Hooks.Tick(); err != nil {
				mc.State.Status = STATE_HALTED
				return string(mc.State.Output), err
			}
		}

		mc.StepInto()
	}

	return string(mc.State.Output), nil
}

// Tick hook that fails with ErrStepLimit after limit steps
func StepLimit(limit uint64) func() error {
	var count uint64

	return func() error {
		if count >= limit {
			return ErrStepLimit
		}
		count++
		return nil
	}
}
