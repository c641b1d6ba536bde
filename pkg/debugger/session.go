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

	"gopkg.in/yaml.v3"
)

// Breakpoints and watchpoints saved next to a program as <name>.bfdb
type Session struct {
	Breakpoints []Breakpoint `yaml:"breakpoints,omitempty"`
	Watchpoints []Watchpoint `yaml:"watchpoints,omitempty"`
}

func (wtype WatchpointType) MarshalYAML() (interface{}, error) {
	return wtype.String(), nil
}

func (wtype *WatchpointType) UnmarshalYAML(node *yaml.Node) error {
	var s string

	if err := node.Decode(&s); err != nil {
		return err
	}

	value, err := ParseWatchpointType(s)

	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*wtype = value
	return nil
}

func LoadSession(reader io.Reader) (*Session, error) {
	var session Session

	if err := yaml.NewDecoder(reader).Decode(&session); err != nil {
		if errors.Is(err, io.EOF) {
			return &session, nil
		}
		return nil, err
	}

	return &session, nil
}

func (session *Session) Save(writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(session); err != nil {
		return err
	}

	return encoder.Close()
}

// Adds the session's points, skipping duplicates
func (dbg *Debugger) Apply(session *Session) error {
	for _, breakpoint := range session.Breakpoints {
		if _, err := dbg.AddBreakpoint(breakpoint.X, breakpoint.Y); err != nil {
			return fmt.Errorf("breakpoint [%d,%d]: %w", breakpoint.X, breakpoint.Y, err)
		}
	}

	for _, watchpoint := range session.Watchpoints {
		if _, err := dbg.AddWatchpoint(
			watchpoint.X, watchpoint.Y, watchpoint.Type,
		); err != nil {
			return fmt.Errorf("watchpoint [%d,%d]: %w", watchpoint.X, watchpoint.Y, err)
		}
	}

	return nil
}

func (dbg *Debugger) Session() *Session {
	return &Session{
		Breakpoints: append([]Breakpoint(nil), dbg.Breakpoints...),
		Watchpoints: append([]Watchpoint(nil), dbg.Watchpoints...),
	}
}
