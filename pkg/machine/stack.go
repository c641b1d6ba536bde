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

// Top of the stack is the last element
type Stack []int

func (s *Stack) Len() int {
	return len(*s)
}

func (s *Stack) Clear() {
	*s = (*s)[:0]
}

func (s *Stack) Push(value int) {
	*s = append(*s, value)
}

// Popping an empty stack yields 0 and leaves it empty
func (s *Stack) Pop() int {
	if len(*s) == 0 {
		return 0
	}

	var value int
	*s, value = (*s)[:len(*s)-1], (*s)[len(*s)-1]
	return value
}

func (s *Stack) Peek() int {
	if len(*s) == 0 {
		return 0
	}

	return (*s)[len(*s)-1]
}

func (s Stack) Snapshot() []int {
	return append(make([]int, 0, len(s)), s...)
}
