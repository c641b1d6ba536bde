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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"github.com/lassandro/gobefunge/pkg/machine"
)

var ErrInvalidCell = errors.New("Cell is outside the 80x25 grid")

func (dbg *Debugger) Step(mc *machine.Machine) {
	if dbg.Break {
		if dbg.HandleBreak != nil {
			dbg.HandleBreak(dbg, mc)
		}
		return
	}

	for _, breakpoint := range dbg.Breakpoints {
		if mc.State.Cursor.X == breakpoint.X && mc.State.Cursor.Y == breakpoint.Y {
			if dbg.HandleBreak != nil {
				dbg.HandleBreak(dbg, mc)
			}
			break
		}
	}
}

func (dbg *Debugger) Read(x, y int, mc *machine.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if x == watchpoint.X && y == watchpoint.Y {
			if dbg.HandleRead != nil {
				dbg.HandleRead(x, y, dbg, mc)
			}
			break
		}
	}
}

func (dbg *Debugger) Write(x, y int, mc *machine.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if x == watchpoint.X && y == watchpoint.Y {
			if dbg.HandleWrite != nil {
				dbg.HandleWrite(x, y, dbg, mc)
			}
			break
		}
	}
}

// Returns false when the breakpoint already exists
func (dbg *Debugger) AddBreakpoint(x, y int) (bool, error) {
	if !machine.InBounds(x, y) {
		return false, ErrInvalidCell
	}

	for _, breakpoint := range dbg.Breakpoints {
		if breakpoint.X == x && breakpoint.Y == y {
			return false, nil
		}
	}

	dbg.Breakpoints = append(dbg.Breakpoints, Breakpoint{x, y})
	return true, nil
}

func (dbg *Debugger) RemoveBreakpoint(i int) error {
	if i < 0 || i >= len(dbg.Breakpoints) {
		return errors.New("Invalid breakpoint number")
	}

	dbg.Breakpoints[i] = dbg.Breakpoints[len(dbg.Breakpoints)-1]
	dbg.Breakpoints = dbg.Breakpoints[:len(dbg.Breakpoints)-1]
	return nil
}

// Returns false when an identical watchpoint already exists
func (dbg *Debugger) AddWatchpoint(x, y int, wtype WatchpointType) (bool, error) {
	if !machine.InBounds(x, y) {
		return false, ErrInvalidCell
	}

	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.X == x && watchpoint.Y == y && watchpoint.Type == wtype {
			return false, nil
		}
	}

	dbg.Watchpoints = append(dbg.Watchpoints, Watchpoint{x, y, wtype})
	return true, nil
}

func (dbg *Debugger) RemoveWatchpoint(i int) error {
	if i < 0 || i >= len(dbg.Watchpoints) {
		return errors.New("Invalid watchpoint number")
	}

	dbg.Watchpoints[i] = dbg.Watchpoints[len(dbg.Watchpoints)-1]
	dbg.Watchpoints = dbg.Watchpoints[:len(dbg.Watchpoints)-1]
	return nil
}

func (dbg *Debugger) out() io.Writer {
	if dbg.Out == nil {
		return os.Stdout
	}
	return dbg.Out
}

// Describes a cell or stack value as shown by the printers: 'c' (99)
func FormatValue(value int) string {
	if value >= 0 && value <= 0xFF && unicode.IsPrint(rune(value)) {
		return fmt.Sprintf("'%c' (%d)", rune(value), value)
	}
	return strconv.Itoa(value)
}

func (dbg *Debugger) PrintCursor(mc *machine.MachineState) {
	var dir string
	switch {
	case mc.Cursor.DX > 0:
		dir = ">"
	case mc.Cursor.DX < 0:
		dir = "<"
	case mc.Cursor.DY < 0:
		dir = "^"
	default:
		dir = "v"
	}

	value, _ := mc.Grid.Get(mc.Cursor.X, mc.Cursor.Y)

	fmt.Fprintf(
		dbg.out(),
		"\033[1m[%d,%d]\033[0m %s %s",
		mc.Cursor.X, mc.Cursor.Y, dir, FormatValue(int(value)),
	)

	if mc.StringMode {
		fmt.Fprint(dbg.out(), " \033[1;30m(string)\033[0m")
	}

	fmt.Fprintf(dbg.out(), " \033[1;30m%s\033[0m\n", mc.Status)
}

// Prints a width x height window of the grid starting at (x, y), clipped to
// the grid. The cell under the cursor is shown in reverse video.
func (dbg *Debugger) PrintGrid(mc *machine.MachineState, x, y, width, height int) {
	out := dbg.out()

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x+width > machine.GRID_WIDTH {
		width = machine.GRID_WIDTH - x
	}
	if y+height > machine.GRID_HEIGHT {
		height = machine.GRID_HEIGHT - y
	}
	if width <= 0 || height <= 0 {
		return
	}

	fmt.Fprint(out, "\033[1;30m    ")
	for col := x; col < x+width; col++ {
		fmt.Fprint(out, col%10)
	}
	fmt.Fprintln(out, "\033[0m")

	for row := y; row < y+height; row++ {
		fmt.Fprintf(out, "\033[1m%2d\033[0m  ", row)

		for col := x; col < x+width; col++ {
			value := mc.Grid[row][col]
			cursor := col == mc.Cursor.X && row == mc.Cursor.Y

			if cursor {
				fmt.Fprint(out, "\033[7m")
			}

			if value <= 0xFF && unicode.IsPrint(value) {
				fmt.Fprintf(out, "%c", value)
			} else {
				fmt.Fprint(out, "\033[1;30m?\033[0m")
			}

			if cursor {
				fmt.Fprint(out, "\033[0m")
			}
		}

		fmt.Fprintln(out)
	}
}

// Prints the stack from the top down
func (dbg *Debugger) PrintStack(mc *machine.MachineState) {
	out := dbg.out()

	if mc.Stack.Len() == 0 {
		fmt.Fprintln(out, "\033[1;30m(empty)\033[0m")
		return
	}

	for i := len(mc.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(
			out,
			"\033[1m[%d]\033[0m %s\n",
			len(mc.Stack)-1-i, FormatValue(mc.Stack[i]),
		)
	}
}

func (dbg *Debugger) PrintOutput(mc *machine.MachineState) {
	fmt.Fprintf(dbg.out(), "%q\n", string(mc.Output))
}
