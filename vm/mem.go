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

// Memory is a single flat address space: addresses below len(program) hit the
// primary segment in place, anything above it goes to a sparse map that reads
// as zero until written. Exactly one of the two regions owns any given
// address.

// Fetch returns the word stored at address addr. Addresses that have never
// been written read as 0. Fetch panics with an error value if addr is
// negative; when reached from program execution the panic is recovered by
// Step and surfaced as an error.
func (i *Instance) Fetch(addr Word) Word {
	if addr < 0 {
		panic(errors.Errorf("fetch from negative address %d", addr))
	}
	if addr < Word(len(i.prog)) {
		return i.prog[addr]
	}
	return i.extra[addr]
}

// Store writes v at address addr. Like Fetch, it panics with an error value
// if addr is negative.
func (i *Instance) Store(addr, v Word) {
	if addr < 0 {
		panic(errors.Errorf("store to negative address %d", addr))
	}
	if addr < Word(len(i.prog)) {
		i.prog[addr] = v
		return
	}
	i.extra[addr] = v
}
