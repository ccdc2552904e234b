// This file is part of intcode - https://github.com/ToonSpin/intcode
//
// Copyright 2019 Toon Spin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ToonSpin/intcode/vm"
	"github.com/pkg/errors"
)

type wordList []vm.Word

func (l *wordList) String() string { return "" }
func (l *wordList) Set(s string) error {
	ws, err := parseWords(s)
	if err != nil {
		return err
	}
	*l = append(*l, ws...)
	return nil
}
func (l *wordList) Get() interface{} { return *l }

var (
	inputs wordList
	ascii  = flag.Bool("ascii", false, "map the I/O queues to the terminal as an ASCII stream")
	noRaw  = flag.Bool("noraw", false, "disable raw terminal IO in ascii mode")
)

// parseWords parses a comma separated list of signed decimal words.
// Whitespace and newlines around individual values are ignored.
func parseWords(s string) ([]vm.Word, error) {
	var ws []vm.Word
	for n, f := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "word %d", n)
		}
		ws = append(ws, vm.Word(v))
	}
	return ws, nil
}

func loadProgram(fileName string) ([]vm.Word, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	ws, err := parseWords(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, errors.Wrapf(err, "%v", fileName)
	}
	return ws, nil
}

// runWords drives the VM in word mode: outputs are printed in decimal, one
// per line, and whenever the VM blocks one word is read from a line of stdin.
func runWords(i *vm.Instance) error {
	sc := bufio.NewScanner(os.Stdin)
	for {
		if err := i.Run(); err != nil {
			return err
		}
		for {
			v, ok := i.GetOutput()
			if !ok {
				break
			}
			fmt.Println(v)
		}
		if i.Halted() {
			return nil
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return errors.Wrap(err, "read input")
			}
			return errors.New("program blocked on input, stdin exhausted")
		}
		v, err := strconv.ParseInt(strings.TrimSpace(sc.Text()), 10, 64)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		i.PushInput(vm.Word(v))
	}
}

// runASCII drives the VM as an interactive character device: output words in
// byte range go to stdout verbatim, anything else is printed in decimal, and
// stdin bytes are pushed as input when the VM blocks.
func runASCII(i *vm.Instance) error {
	raw := false
	if !*noRaw {
		if tearDown, err := setRawIO(); err == nil {
			raw = true
			defer tearDown()
		}
	}
	r := bufio.NewReader(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for {
		if err := i.Run(); err != nil {
			return err
		}
		for {
			v, ok := i.GetOutput()
			if !ok {
				break
			}
			if v >= 0 && v < 256 {
				w.WriteByte(byte(v))
			} else {
				fmt.Fprintf(w, "%d\n", v)
			}
		}
		if i.Halted() {
			return nil
		}
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, "write output")
		}
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "read input")
		}
		// in raw tty mode, we need to handle CTRL-D ourselves
		if raw && b == 4 {
			return nil
		}
		i.PushInput(vm.Word(b))
	}
}

func main() {
	flag.Var(&inputs, "in", "comma separated words to queue as input (can be specified multiple times)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] program-file\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	prog, err := loadProgram(flag.Arg(0))
	if err == nil {
		var i *vm.Instance
		i, err = vm.New(prog, vm.Input(inputs...))
		if err == nil {
			if *ascii {
				err = runASCII(i)
			} else {
				err = runWords(i)
			}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
