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

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/lassandro/gobefunge/pkg/debugger"
	"github.com/lassandro/gobefunge/pkg/encoding"
	"github.com/lassandro/gobefunge/pkg/machine"
)

var lastcmd []string
var history []string

func decodeCell(args []string) (int, int, error) {
	x, err := encoding.DecodeCoord(args[0])

	if err != nil {
		return 0, 0, err
	}

	y, err := encoding.DecodeCoord(args[1])

	if err != nil {
		return 0, 0, err
	}

	if !machine.InBounds(x, y) {
		return 0, 0, debugger.ErrInvalidCell
	}

	return x, y, nil
}

func indexFormat(count int) string {
	digits := math.Floor(math.Log10(float64(count + 1)))
	return fmt.Sprintf("#%%0%dd: [%%d,%%d]", int64(digits)+1)
}

func debugBreak(dbg *debugger.Debugger, args []string) {
	const usage = "break [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "break add [x] [y]"

		if len(args) != 2 {
			log.Println(usage)
			return
		}

		x, y, err := decodeCell(args)

		if err != nil {
			log.Println(err)
			return
		}

		if added, _ := dbg.AddBreakpoint(x, y); added {
			fmt.Printf("Breakpoint added [%d,%d]\n", x, y)
		}

	case "l", "ls", "list":
		const usage = "break list"

		if len(args) != 0 {
			log.Println(usage)
			return
		}

		fmtstring := indexFormat(len(dbg.Breakpoints)) + "\n"

		for i, breakpoint := range dbg.Breakpoints {
			fmt.Printf(fmtstring, i, breakpoint.X, breakpoint.Y)
		}

	case "r", "rm", "remove":
		const usage = "break remove [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		if err := dbg.RemoveBreakpoint(int(i)); err != nil {
			log.Println(err)
			return
		}

		fmt.Printf("Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.Breakpoints = make([]debugger.Breakpoint, 0)
		fmt.Println("Breakpoints reset")

	default:
		log.Printf("break: '%s' is not a valid command\n", cmd)
		log.Println(usage)
	}
}

func debugWatch(dbg *debugger.Debugger, args []string) {
	const usage = "watch [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "watch add [x] [y] [read|write|readwrite]"

		if len(args) != 3 {
			log.Println(usage)
			return
		}

		x, y, err := decodeCell(args)

		if err != nil {
			log.Println(err)
			return
		}

		wtype, err := debugger.ParseWatchpointType(args[2])

		if err != nil {
			log.Println(usage)
			return
		}

		if added, _ := dbg.AddWatchpoint(x, y, wtype); added {
			fmt.Printf("Watchpoint added [%d,%d] (%s)\n", x, y, wtype)
		}

	case "l", "ls", "list":
		const usage = "watch list"

		if len(args) != 0 {
			log.Println(usage)
			return
		}

		fmtstring := indexFormat(len(dbg.Watchpoints)) + " %s\n"

		for i, watchpoint := range dbg.Watchpoints {
			fmt.Printf(fmtstring, i, watchpoint.X, watchpoint.Y, watchpoint.Type)
		}

	case "r", "rm", "remove":
		const usage = "watch remove [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		if err := dbg.RemoveWatchpoint(int(i)); err != nil {
			log.Println(err)
			return
		}

		fmt.Printf("Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.Watchpoints = make([]debugger.Watchpoint, 0)
		fmt.Println("Watchpoints reset")

	default:
		log.Printf("watch: '%s' is not a valid command\n", cmd)
		log.Println(usage)
	}
}

func debugGrid(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "grid [x y [width height]]"

	x, y := 0, 0
	width, height := machine.GRID_WIDTH, machine.GRID_HEIGHT

	switch len(args) {
	case 0:
	case 2, 4:
		values := make([]int, len(args))

		for i, arg := range args {
			value, err := encoding.DecodeCoord(arg)

			if err != nil {
				log.Println(err)
				return
			}

			values[i] = value
		}

		x, y = values[0], values[1]

		if len(values) == 4 {
			width, height = values[2], values[3]
		} else {
			width, height = machine.GRID_WIDTH-x, machine.GRID_HEIGHT-y
		}

	default:
		log.Println(usage)
		return
	}

	dbg.PrintGrid(mc, x, y, width, height)
}

func debugSet(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "set [x] [y] [char|#n|0x##]"

	if len(args) != 3 {
		log.Println(usage)
		return
	}

	x, y, err := decodeCell(args)

	if err != nil {
		log.Println(err)
		return
	}

	value, err := encoding.DecodeCell(args[2])

	if err != nil {
		log.Println(err)
		return
	}

	mc.Grid.Set(x, y, value)
	fmt.Printf("\033[1m[%d,%d]\033[0m %s\n", x, y, debugger.FormatValue(int(value)))
}

func debugJump(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "jump [x] [y] [>|<|^|v]"

	if len(args) != 2 && len(args) != 3 {
		log.Println(usage)
		return
	}

	x, y, err := decodeCell(args)

	if err != nil {
		log.Println(err)
		return
	}

	if len(args) == 3 {
		switch args[2] {
		case ">":
			mc.Cursor.Right()
		case "<":
			mc.Cursor.Left()
		case "^":
			mc.Cursor.Up()
		case "v":
			mc.Cursor.Down()
		default:
			log.Println(usage)
			return
		}
	}

	mc.Cursor.X, mc.Cursor.Y = x, y
	dbg.PrintCursor(mc)
}

func debugPush(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "push [#] ..."

	if len(args) == 0 {
		log.Println(usage)
		return
	}

	for _, arg := range args {
		value, err := strconv.Atoi(arg)

		if err != nil {
			log.Println(err)
			return
		}

		mc.Stack.Push(value)
	}

	dbg.PrintStack(mc)
}

func debugREPL(dbg *debugger.Debugger, mc *machine.Machine) {
	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)

	for _, line := range history {
		ln.AppendHistory(line)
	}

	for {
		line, err := ln.Prompt("(dbg) ")

		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if err != nil {
			if err != io.EOF {
				log.Println(err)
			}
			fmt.Println()
			shouldexit = true
			mc.Pause()
			return
		}

		args := strings.Fields(line)

		if len(args) == 0 {
			if len(lastcmd) == 0 {
				continue
			}
			args = lastcmd
		} else {
			lastcmd = make([]string, len(args))
			copy(lastcmd, args)
			ln.AppendHistory(line)
			history = append(history, line)
		}

		cmd := args[0]
		args = args[1:]

		switch cmd {
		case "b", "bp", "break", "breakpoint":
			debugBreak(dbg, args)

		case "w", "wp", "watch", "watchpoint":
			debugWatch(dbg, args)

		case "s", "st", "stack":
			dbg.PrintStack(&mc.State)

		case "p", "push":
			debugPush(dbg, &mc.State, args)

		case "g", "grid":
			debugGrid(dbg, &mc.State, args)

		case "r", "cur", "cursor":
			dbg.PrintCursor(&mc.State)

		case "o", "out", "output":
			dbg.PrintOutput(&mc.State)

		case "j", "jmp", "jump":
			debugJump(dbg, &mc.State, args)

		case "set":
			debugSet(dbg, &mc.State, args)

		case "c", "continue":
			dbg.Break = false
			mc.Resume()
			return

		case "n", "next":
			dbg.Break = true
			mc.Resume()
			return

		case "q", "quit", "exit":
			shouldexit = true
			mc.Pause()
			return

		case "clear":
			fmt.Print("\033[H\033[2J")

		case "reset":
			if err := mc.Load(dbg.Program); err != nil {
				log.Println(err)
			} else {
				dbg.PrintCursor(&mc.State)
			}

		default:
			fmt.Printf("error: '%s' is not a valid command\n", cmd)
		}
	}
}

func handleBreak(dbg *debugger.Debugger, mc *machine.Machine) {
	if !dbg.Break {
		fmt.Println()
		fmt.Println("Program stopped")
	}
	dbg.PrintCursor(&mc.State)
	debugREPL(dbg, mc)
}

func handleRead(x, y int, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Printf("Program stopped: read [%d,%d]\n", x, y)
	dbg.PrintCursor(&mc.State)
	debugREPL(dbg, mc)
}

func handleWrite(x, y int, dbg *debugger.Debugger, mc *machine.Machine) {
	value, _ := mc.State.Grid.Get(x, y)

	fmt.Println()
	fmt.Printf(
		"Program stopped: write [%d,%d] %s\n",
		x, y, debugger.FormatValue(int(value)),
	)
	dbg.PrintCursor(&mc.State)
	debugREPL(dbg, mc)
}
