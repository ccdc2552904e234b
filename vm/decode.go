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

// Intcode Virtual Machine Opcodes.
const (
	OpAdd                Word = 1
	OpMul                Word = 2
	OpInput              Word = 3
	OpOutput             Word = 4
	OpJumpIfTrue         Word = 5
	OpJumpIfFalse        Word = 6
	OpLessThan           Word = 7
	OpEquals             Word = 8
	OpRelativeBaseOffset Word = 9
	OpHalt               Word = 99
)

// Parameter modes.
const (
	modePosition  Word = 0
	modeImmediate Word = 1
	modeRelative  Word = 2
)

// opWidth maps an opcode to its instruction width in words, opcode included.
// Halt has width 0: the machine stops on it and the pointer stays put.
var opWidth = map[Word]Word{
	OpAdd:                4,
	OpMul:                4,
	OpInput:              2,
	OpOutput:             2,
	OpJumpIfTrue:         3,
	OpJumpIfFalse:        3,
	OpLessThan:           4,
	OpEquals:             4,
	OpRelativeBaseOffset: 2,
	OpHalt:               0,
}

var opNames = map[Word]string{
	OpAdd:                "add",
	OpMul:                "mul",
	OpInput:              "in",
	OpOutput:             "out",
	OpJumpIfTrue:         "jnz",
	OpJumpIfFalse:        "jz",
	OpLessThan:           "lt",
	OpEquals:             "eq",
	OpRelativeBaseOffset: "rbo",
	OpHalt:               "halt",
}

// instruction is a single decoded word: an opcode and one addressing mode per
// parameter.
type instruction struct {
	op    Word
	modes [3]Word
}

// decode splits a raw word into an opcode and three parameter modes. The two
// low decimal digits are the opcode; the remaining digits, least significant
// first, are the modes of parameters 1 through 3, absent digits defaulting to
// position mode. decode is pure: it touches no machine state.
func decode(w Word) (instruction, error) {
	in := instruction{op: w % 100}
	if _, ok := opWidth[in.op]; !ok {
		return in, errors.Errorf("unknown opcode %d", in.op)
	}
	w /= 100
	for p := 0; p < 3; p++ {
		m := w % 10
		switch m {
		case modePosition, modeImmediate, modeRelative:
			in.modes[p] = m
		default:
			return in, errors.Errorf("unknown parameter mode %d", m)
		}
		w /= 10
	}
	return in, nil
}
