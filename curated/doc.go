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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like fmt.Errorf() it
// takes a formatting pattern and placeholder values, and returns an error.
// Unlike fmt.Errorf() the pattern is retained and can be tested for with the
// Is() function:
//
//	e := curated.Errorf("cartridge: %v", err)
//
//	if curated.Is(e, "cartridge: %v") {
//		...
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, rather than only at the head. IsAny() answers whether the
// error was created by this package at all, which is useful for deciding
// whether an error was expected ('curated') or unexpected.
//
// The Error() function implementation normalises the message chain, removing
// duplicate adjacent parts. Parts of a chain are separated by the sub-string
// ": " as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan).
//
// Sentinel patterns should be stored as a const string, suitably named,
// close to the code that generates them.
package curated
