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
	"fmt"
	"io"

	"github.com/lassandro/gobefunge/pkg/machine"
)

type WatchpointType uint

const (
	ReadWatch WatchpointType = iota
	WriteWatch
	ReadWriteWatch
)

func (wtype WatchpointType) String() string {
	switch wtype {
	case ReadWatch:
		return "read"
	case WriteWatch:
		return "write"
	case ReadWriteWatch:
		return "readwrite"
	default:
		return fmt.Sprintf("WatchpointType(%d)", uint(wtype))
	}
}

func ParseWatchpointType(s string) (WatchpointType, error) {
	switch s {
	case "r", "read":
		return ReadWatch, nil
	case "w", "write":
		return WriteWatch, nil
	case "rw", "rwrite", "readwrite":
		return ReadWriteWatch, nil
	default:
		return 0, fmt.Errorf("Invalid watchpoint type '%s'", s)
	}
}

// Watchpoints fire on 'g' (read) and 'p' (write) accesses to a cell
type Watchpoint struct {
	X    int            `yaml:"x"`
	Y    int            `yaml:"y"`
	Type WatchpointType `yaml:"type"`
}

// Breakpoints fire when the cursor comes to rest on a cell
type Breakpoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type Debugger struct {
	Break bool

	Breakpoints []Breakpoint
	Watchpoints []Watchpoint

	// Program text, kept for resets
	Program string

	// Printers write here; nil means os.Stdout
	Out io.Writer

	HandleBreak func(*Debugger, *machine.Machine)
	HandleRead  func(int, int, *Debugger, *machine.Machine)
	HandleWrite func(int, int, *Debugger, *machine.Machine)
}
