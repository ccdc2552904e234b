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

package vm

// Word is the raw type stored in a memory location. Words are signed 64 bit
// integers and serve as code, data and addresses alike.
type Word int64

// runState tracks whether the machine may dispatch the next instruction.
type runState int

const (
	running runState = iota
	waitingForInput
	halted
)

// Instance represents an Intcode VM instance.
type Instance struct {
	prog     []Word        // primary memory segment, the program itself
	extra    map[Word]Word // sparse extension for addresses >= len(prog)
	ip       Word          // instruction pointer
	rbase    Word          // relative base register
	in       []Word
	inPos    int
	out      []Word
	outPos   int
	state    runState
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Input preloads the input queue with the given words, in order. It may be
// specified multiple times; later options append after earlier ones.
func Input(vs ...Word) Option {
	return func(i *Instance) error {
		i.in = append(i.in, vs...)
		return nil
	}
}

// RelativeBase sets the initial value of the relative base register. The
// default is 0.
func RelativeBase(b Word) Option {
	return func(i *Instance) error {
		i.rbase = b
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode virtual machine instance.
//
// The program parameter is the initial memory image. It is copied, so the
// caller's slice is not aliased by the VM and later writes by the program do
// not show through it. The returned Instance starts out running, with the
// instruction pointer and relative base at 0 and both queues empty.
//
// Options will be set by calling SetOptions.
func New(program []Word, opts ...Option) (*Instance, error) {
	i := &Instance{
		prog:  append([]Word(nil), program...),
		extra: make(map[Word]Word),
		state: running,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// IP returns the current value of the instruction pointer.
func (i *Instance) IP() Word {
	return i.ip
}

// RelBase returns the current value of the relative base register.
func (i *Instance) RelBase() Word {
	return i.rbase
}

// Halted reports whether the program has executed a halt instruction. A
// halted Instance can never run again.
func (i *Instance) Halted() bool {
	return i.state == halted
}

// HaltedOrBlocked reports whether the program has halted or is blocked
// waiting for input. When it returns false, a call to Run will make progress.
func (i *Instance) HaltedOrBlocked() bool {
	return i.state != running
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
