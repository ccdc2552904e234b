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

package vm_test

import (
	"fmt"

	"github.com/ToonSpin/intcode/vm"
)

// Shows the cooperative suspend/resume cycle: the program blocks on its input
// instruction, the owner supplies a word, and the program resumes in place.
func ExampleInstance_Run() {
	i, err := vm.New([]vm.Word{3, 5, 4, 5, 99, 0})
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.Halted(), i.HasOutput())

	i.PushInput(123)
	if err = i.Run(); err != nil {
		panic(err)
	}
	v, _ := i.GetOutput()
	fmt.Println(i.Halted(), v)

	// Output:
	// false false
	// true 123
}

// Outputs drain in emission order, one word per call.
func ExampleInstance_GetOutput() {
	i, err := vm.New([]vm.Word{4, 5, 4, 6, 99, 1, 2})
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	for {
		v, ok := i.GetOutput()
		if !ok {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2
}

// LastOutput keeps returning the most recent emission even after GetOutput
// has drained the queue.
func ExampleInstance_LastOutput() {
	i, err := vm.New([]vm.Word{4, 3, 99, 1})
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}

	v, ok := i.GetOutput()
	fmt.Println(v, ok)
	v, ok = i.GetOutput()
	fmt.Println(v, ok)
	v, ok = i.LastOutput()
	fmt.Println(v, ok)

	// Output:
	// 1 true
	// 0 false
	// 1 true
}
