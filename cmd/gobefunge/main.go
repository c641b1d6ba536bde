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
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/lassandro/gobefunge/pkg/debugger"
	"github.com/lassandro/gobefunge/pkg/machine"
)

var helpvar bool
var debugvar bool
var tracevar bool
var seedvar int64
var maxstepsvar uint64
var sessionvar string
var shouldexit bool

const usage = "gobefunge [-debug] [-trace] [-seed #] [-max-steps #] filename"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&debugvar, "debug", false, "Runs the program in a debug CLI")
	flag.BoolVar(
		&tracevar, "trace", false,
		"Logs every cursor position and the cell under it to stderr",
	)
	flag.Int64Var(
		&seedvar, "seed", 0,
		"Seeds the random direction instruction '?' for repeatable runs. "+
			"0 seeds from the clock",
	)
	flag.Uint64Var(
		&maxstepsvar, "max-steps", 0,
		"Stops the program after this many steps. 0 runs until '@'",
	)
	flag.StringVar(
		&sessionvar, "session", "",
		"Specifies the debugger session file, overriding the default "+
			"of the program filename with extension '.bfdb'",
	)
	flag.Parse()
}

func sessionPath(program string) string {
	if sessionvar != "" {
		return sessionvar
	}

	return filepath.Join(filepath.Dir(program), strings.TrimSuffix(
		filepath.Base(program), filepath.Ext(program),
	)+".bfdb")
}

func loadSession(dbg *debugger.Debugger, filename string) {
	file, err := os.Open(filename)

	if os.IsNotExist(err) {
		return
	} else if err != nil {
		log.Println("Error loading session file")
		log.Println(err)
		return
	}

	defer file.Close()

	session, err := debugger.LoadSession(file)

	if err == nil {
		err = dbg.Apply(session)
	}

	if err != nil {
		log.Println("Error loading session file")
		log.Println(err)
	}
}

func saveSession(dbg *debugger.Debugger, filename string) error {
	if len(dbg.Breakpoints) == 0 && len(dbg.Watchpoints) == 0 {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return nil
		}
	}

	file, err := os.Create(filename)

	if err != nil {
		return err
	}

	if err := dbg.Session().Save(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func readInput(keyboard *bufio.Reader, display *bufio.Writer, prompt string) string {
	interactive := isTerminal()

	if interactive {
		display.WriteString(prompt)
		display.Flush()
	}

	if prompt == machine.PROMPT_CHAR {
		if interactive {
			enterRawTerm()
			defer exitRawTerm()
		}

		r, _, err := keyboard.ReadRune()

		if err != nil {
			if err != io.EOF {
				log.Println(err)
			}
			return ""
		}

		if interactive {
			display.WriteString(string(r) + "\n")
			display.Flush()
		}

		return string(r)
	}

	line, err := keyboard.ReadString('\n')

	if err != nil && err != io.EOF {
		log.Println(err)
	}

	return line
}

func gobefunge() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	file, err := os.Open(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	defer file.Close()

	keyboard := bufio.NewReader(os.Stdin)
	display := bufio.NewWriter(os.Stdout)
	defer display.Flush()

	var mc machine.Machine

	if seedvar != 0 {
		mc.Rand = rand.New(rand.NewSource(seedvar))
	}

	mc.Hooks.Output = func(text string) {
		display.WriteString(text)
		display.Flush()
	}

	mc.Hooks.Input = func(prompt string) string {
		return readInput(keyboard, display, prompt)
	}

	if maxstepsvar > 0 {
		mc.Hooks.Tick = machine.StepLimit(maxstepsvar)
	}

	if tracevar {
		mc.Hooks.Step = func(x, y int) {
			value, _ := mc.State.Grid.Get(x, y)
			log.Printf("[%d,%d] %s", x, y, debugger.FormatValue(int(value)))
		}
	}

	if err := mc.LoadReader(file); err != nil {
		log.Println(err)
		return 1
	}

	var dbg debugger.Debugger

	if debugvar {
		dbg.HandleBreak = handleBreak
		dbg.HandleRead = handleRead
		dbg.HandleWrite = handleWrite
		dbg.Program = mc.State.Grid.String()
		mc.Debugger = &dbg

		session := sessionPath(args[0])
		loadSession(&dbg, session)

		defer func() {
			if err := saveSession(&dbg, session); err != nil {
				log.Println("Error saving session file")
				log.Println(err)
			}
		}()

		c := make(chan os.Signal, 1)
		defer close(c)
		defer signal.Stop(c)

		signal.Notify(c, os.Interrupt)
		go func() {
			for range c {
				fmt.Println()
				dbg.Break = true
			}
		}()

		debugREPL(&dbg, &mc)
	}

	for !shouldexit {
		_, err := mc.Continue()

		if err != nil {
			display.Flush()
			fmt.Println()
			log.Println(err)
			return 1
		}

		if !debugvar || shouldexit {
			break
		}

		display.Flush()
		fmt.Println()
		fmt.Println("Program halted")
		debugREPL(&dbg, &mc)
	}

	return 0
}

func main() {
	os.Exit(gobefunge())
}
