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

// The intcode command line tool runs Intcode programs with the package
// github.com/ToonSpin/intcode/vm, wiring the VM's input and output queues to
// the terminal.
//
// Usage:
//
//	intcode [options] program-file
//
// The program file holds the initial memory image as comma separated signed
// decimal words; whitespace and newlines around values are ignored.
//
//	-in words
//		  comma separated words to queue as input before the program starts;
//		  can be specified multiple times, inputs queue up in order of
//		  appearance on the command line
//	-ascii
//		  map the I/O queues to the terminal as an ASCII stream
//	-noraw
//		  disable raw terminal IO in ascii mode
//
// In the default word mode, every output word is printed in decimal on its
// own line. Whenever the program blocks on input, one word is read from a
// line of stdin and pushed to the input queue.
//
// In -ascii mode the VM is treated as an interactive character device, as
// expected by programs that converse in text: output words in the range
// 0..255 are written to stdout as raw bytes, larger words are printed in
// decimal, and single bytes read from stdin feed the input queue. Upon
// startup the terminal is switched to raw mode unless -noraw is given;
// CTRL-D exits.
package main
