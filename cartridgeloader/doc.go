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

// Package cartridgeloader is used to specify the cartridge image that is to
// be attached to the emulated console.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported. Loaders can also be
// created directly from a byte slice, which is useful for testing.
//
//	ldr := cartridgeloader.NewLoader("roms/game.gb")
//	data, err := ldr.Load()
package cartridgeloader
