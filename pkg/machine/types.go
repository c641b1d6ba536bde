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
	"fmt"
	"math/rand"
)

type RunState uint

func (s RunState) String() string {
	switch s {
	case STATE_NOTLOADED:
		return "not loaded"
	case STATE_READY:
		return "ready"
	case STATE_RUNNING:
		return "running"
	case STATE_HALTED:
		return "halted"
	default:
		return fmt.Sprintf("RunState(%d)", uint(s))
	}
}

// Optional observers. Every hook is invoked synchronously and must not keep
// references to its arguments past the call.
type Hooks struct {
	// Copy of the stack after each push or pop
	StackChange func(stack []int)

	// Each chunk produced by '.' or ','
	Output func(text string)

	// After 'p' writes a cell
	CellChange func(x, y int, value rune)

	// After every cursor advance, bridges included
	Step func(x, y int)

	// Called by '&' and '~'. A nil hook reads as the empty string.
	Input func(prompt string) string

	// Called once per StepInto from Run. Returning an error halts the machine
	// and Run returns that error.
	Tick func() error
}

type MachineDebugger interface {
	Step(mc *Machine)
	Read(x, y int, mc *Machine)
	Write(x, y int, mc *Machine)
}

type MachineState struct {
	Grid       Grid
	Stack      Stack
	Cursor     Cursor
	StringMode bool
	Output     []byte
	Status     RunState
}

type Machine struct {
	Hooks    Hooks
	State    MachineState
	Debugger MachineDebugger

	// Source for '?'. When nil a time-seeded source is created on first use.
	Rand *rand.Rand

	// Silences StackChange, Output, CellChange and Step. Output is still
	// accumulated in State.Output.
	IgnoreCallbacks bool
}
