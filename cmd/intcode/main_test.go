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
	"testing"

	"github.com/ToonSpin/intcode/vm"
)

func Test_parseWords(t *testing.T) {
	tests := []struct {
		in   string
		want []vm.Word
	}{
		{"99", []vm.Word{99}},
		{"1,0,0,0,99", []vm.Word{1, 0, 0, 0, 99}},
		{"104, -34,\n1125899906842624", []vm.Word{104, -34, 1125899906842624}},
	}
	for _, test := range tests {
		ws, err := parseWords(test.in)
		if err != nil {
			t.Errorf("parseWords(%q): %+v", test.in, err)
			continue
		}
		if len(ws) != len(test.want) {
			t.Errorf("parseWords(%q) = %d, expected %d", test.in, ws, test.want)
			continue
		}
		for k := range ws {
			if ws[k] != test.want[k] {
				t.Errorf("parseWords(%q) = %d, expected %d", test.in, ws, test.want)
				break
			}
		}
	}
}

func Test_parseWords_errors(t *testing.T) {
	for _, s := range []string{"", "1,,2", "1,x", "1,2,", "1.5", "99999999999999999999"} {
		if _, err := parseWords(s); err == nil {
			t.Errorf("parseWords(%q): expected an error", s)
		}
	}
}
