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

// Both queues are append-only slices paired with a read cursor. Nothing is
// ever removed, which is what lets LastOutput peek at history the drain
// cursor has already passed.

// PushInput appends v to the input queue. If the machine is blocked waiting
// for input it becomes runnable again, with the instruction pointer still on
// the pending input instruction.
func (i *Instance) PushInput(v Word) {
	i.in = append(i.in, v)
	if i.state == waitingForInput {
		i.state = running
	}
}

// HasOutput reports whether the output queue holds at least one word that has
// not been consumed yet.
func (i *Instance) HasOutput() bool {
	return i.outPos < len(i.out)
}

// GetOutput consumes and returns the oldest output word not yet consumed.
// The second return value is false if the queue has nothing left unread.
func (i *Instance) GetOutput() (Word, bool) {
	if !i.HasOutput() {
		return 0, false
	}
	v := i.out[i.outPos]
	i.outPos++
	return v, true
}

// LastOutput returns the most recently emitted output word, even if it has
// already been consumed with GetOutput. The second return value is false if
// the program has not emitted anything yet.
func (i *Instance) LastOutput() (Word, bool) {
	if len(i.out) == 0 {
		return 0, false
	}
	return i.out[len(i.out)-1], true
}
