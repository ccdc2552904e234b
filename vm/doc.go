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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a flat array of signed 64 bit words that is both code
// and data. The machine executes it with a single instruction pointer and a
// relative base register, reading inputs from a queue and emitting outputs to
// another. Memory past the end of the program reads as zero and may be
// written freely, so programs can use high addresses as scratch storage.
//
// The VM is driven synchronously by its owner: construct an Instance with
// New, optionally queue some input, then call Run. Run returns when the
// program halts or when it reaches an input instruction with nothing left to
// read. In the latter case the instruction pointer is not advanced: push more
// input with PushInput and call Run again, and the pending input instruction
// resumes exactly where it left off. Outputs are drained with GetOutput, or
// peeked with LastOutput.
//
// A single Instance is not safe for concurrent use. Hosts that run several
// programs at once (for example a chain of amplifiers feeding each other)
// should run one Instance per goroutine and shuttle words between the queues
// themselves.
//
// Malformed programs are not recoverable: an unknown opcode or parameter
// mode, a write operand in immediate mode, or a negative address stops the
// machine and surfaces as an error from Run. No instruction applies any of
// its side effects before such an error is raised.
package vm
