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

import "github.com/pkg/errors"

// value resolves parameter param of the current instruction as a read.
// In immediate mode the raw word is the value itself, otherwise the raw word
// is an address (offset by the relative base in relative mode).
func (i *Instance) value(in instruction, param Word) Word {
	raw := i.Fetch(i.ip + param)
	switch in.modes[param-1] {
	case modeImmediate:
		return raw
	case modeRelative:
		return i.Fetch(i.rbase + raw)
	default:
		return i.Fetch(raw)
	}
}

// writeAddress resolves parameter param of the current instruction as a store
// target. Immediate mode has no address to offer, so it is rejected here.
func (i *Instance) writeAddress(in instruction, param Word) (Word, error) {
	raw := i.Fetch(i.ip + param)
	switch in.modes[param-1] {
	case modePosition:
		return raw, nil
	case modeRelative:
		return i.rbase + raw, nil
	default:
		return 0, errors.Errorf("%s: cannot write in immediate mode", opNames[in.op])
	}
}

// Step decodes and executes the single instruction under the instruction
// pointer. Calling Step on a blocked machine retries the pending input
// instruction; calling it on a halted machine is an error.
//
// Operands are resolved and validated before any store, queue append or
// register update, so a failing instruction leaves the machine untouched.
func (i *Instance) Step() (err error) {
	defer func() {
		if e := recover(); e != nil {
			if e, ok := e.(error); ok {
				err = errors.Wrapf(e, "pc=%d", i.ip)
			} else {
				panic(e)
			}
		}
	}()
	if i.state == halted {
		return errors.New("attempt to run a halted program")
	}
	in, err := decode(i.Fetch(i.ip))
	if err != nil {
		return errors.Wrapf(err, "pc=%d", i.ip)
	}
	bump := true
	switch in.op {
	case OpAdd:
		dst, err := i.writeAddress(in, 3)
		if err != nil {
			return errors.Wrapf(err, "pc=%d", i.ip)
		}
		i.Store(dst, i.value(in, 1)+i.value(in, 2))
	case OpMul:
		dst, err := i.writeAddress(in, 3)
		if err != nil {
			return errors.Wrapf(err, "pc=%d", i.ip)
		}
		i.Store(dst, i.value(in, 1)*i.value(in, 2))
	case OpInput:
		if i.inPos < len(i.in) {
			dst, err := i.writeAddress(in, 1)
			if err != nil {
				return errors.Wrapf(err, "pc=%d", i.ip)
			}
			i.Store(dst, i.in[i.inPos])
			i.inPos++
		} else {
			// leave the pointer on this instruction so that it is retried
			// once the owner pushes more input
			bump = false
			i.state = waitingForInput
		}
	case OpOutput:
		i.out = append(i.out, i.value(in, 1))
	case OpJumpIfTrue:
		if i.value(in, 1) != 0 {
			bump = false
			i.ip = i.value(in, 2)
		}
	case OpJumpIfFalse:
		if i.value(in, 1) == 0 {
			bump = false
			i.ip = i.value(in, 2)
		}
	case OpLessThan:
		dst, err := i.writeAddress(in, 3)
		if err != nil {
			return errors.Wrapf(err, "pc=%d", i.ip)
		}
		if i.value(in, 1) < i.value(in, 2) {
			i.Store(dst, 1)
		} else {
			i.Store(dst, 0)
		}
	case OpEquals:
		dst, err := i.writeAddress(in, 3)
		if err != nil {
			return errors.Wrapf(err, "pc=%d", i.ip)
		}
		if i.value(in, 1) == i.value(in, 2) {
			i.Store(dst, 1)
		} else {
			i.Store(dst, 0)
		}
	case OpRelativeBaseOffset:
		i.rbase += i.value(in, 1)
	case OpHalt:
		i.state = halted
	}
	if bump {
		i.ip += opWidth[in.op]
	}
	i.insCount++
	return nil
}

// Run executes instructions until the program halts or blocks on input.
//
// Run returns nil when the machine stops in either of those two states; the
// owner should inspect Halted or HaltedOrBlocked, drain the output queue and,
// if the machine is merely blocked, push more input and call Run again.
// Calling Run on a machine that is blocked with still no input available
// returns nil immediately without touching any state.
//
// A non-nil error means the program is malformed (unknown opcode or
// parameter mode, write operand in immediate mode, negative address) or that
// Run was called on a halted machine. Errors are not recoverable and the
// offending instruction has had none of its effects applied; the instruction
// pointer still addresses it.
func (i *Instance) Run() error {
	if i.state == halted {
		return errors.New("attempt to run a halted program")
	}
	for i.state == running {
		if err := i.Step(); err != nil {
			return err
		}
	}
	return nil
}
