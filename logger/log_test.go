// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/hatless/gopherboy/logger"
	"github.com/hatless/gopherboy/test"
)

func TestWrite(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}
	logger.Write(w)
	test.Equate(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\n")
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	logger.Log("test", "repeated entry")
	logger.Log("test", "repeated entry")
	logger.Log("test", "repeated entry")

	w := &strings.Builder{}
	logger.Write(w)
	test.Equate(t, w.String(), "test: repeated entry (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "entry one")
	logger.Log("test", "entry two")
	logger.Log("test", "entry three")

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.Equate(t, w.String(), "test: entry three\n")
}
