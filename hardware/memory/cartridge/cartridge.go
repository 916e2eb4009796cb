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

// Package cartridge handles the cartridge of the emulated console: header
// parsing and the bank controller ("MBC") variants that decide which part of
// the ROM image is visible through the console's fixed address windows.
package cartridge

import (
	"crypto/sha1"
	"fmt"

	"github.com/hatless/gopherboy/cartridgeloader"
	"github.com/hatless/gopherboy/logger"
)

// Cartridge is the loaded game. It routes the ROM and external RAM windows
// of the address space through the bank controller appropriate to the image.
type Cartridge struct {
	Filename string
	Hash     string
	Header   Header

	// the specific controller behaviour for the loaded image
	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The new cartridge is in the ejected state.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return "no cartridge"
	}
	return fmt.Sprintf("%s %s", cart.Header, cart.mapper)
}

// Eject removes the cartridge. Unlike the real hardware an "empty" mapper
// takes its place; reads of the ROM window succeed and return 0xff.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.Hash = ""
	cart.Header = Header{}
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Attach parses the loaded image and replaces the current cartridge. On
// failure the previously attached cartridge, including its RAM content, is
// left exactly as it was.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	data, err := cartload.Load()
	if err != nil {
		return err
	}

	hdr, err := parseHeader(data)
	if err != nil {
		return err
	}

	// the image is valid. nothing from this point can fail so it is safe to
	// start replacing the attached cartridge
	cart.Filename = cartload.Filename
	cart.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	cart.Header = hdr

	// pad the ROM data up to the declared size so bank arithmetic never
	// indexes outside the image
	if len(data) < hdr.ROMSize {
		data = append(data, make([]uint8, hdr.ROMSize-len(data))...)
	}

	switch hdr.Controller {
	case ControllerROM:
		cart.mapper = newROMOnly(data, hdr)
	case ControllerMBC1:
		cart.mapper = newMBC1(data, hdr)
	case ControllerMBC3:
		cart.mapper = newMBC3(data, hdr)
	case ControllerMBC5:
		cart.mapper = newMBC5(data, hdr)
	default:
		// unknown controller types do not fail the load. fall back to
		// ROM-only behaviour so the image can at least be inspected
		logger.Logf("cartridge", "unsupported controller type (%#02x); continuing as ROM only", hdr.ControllerTag)
		cart.mapper = newROMOnly(data, hdr)
	}

	return nil
}

// Reset the bank controller and RAM content to power-on values. The ROM data
// itself is immutable and unaffected.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Read an address in the ROM window. Address must be normalised.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.Read(addr)
}

// Write an address in the ROM window. ROM cells cannot be written; the write
// is interpreted by the bank controller, or dropped.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.Write(addr, data)
}

// ReadRAM reads from the external RAM window. Offset must be normalised.
func (cart *Cartridge) ReadRAM(offset uint16) uint8 {
	return cart.mapper.ReadRAM(offset)
}

// WriteRAM writes to the external RAM window. Offset must be normalised.
func (cart *Cartridge) WriteRAM(offset uint16, data uint8) {
	cart.mapper.WriteRAM(offset, data)
}

// NumBanks returns the number of ROM banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// CurrentBank returns the bank currently visible in the upper portion of the
// ROM window.
func (cart *Cartridge) CurrentBank() int {
	return cart.mapper.CurrentBank()
}

// MapperID returns the ID string of the attached bank controller.
func (cart *Cartridge) MapperID() string {
	return cart.mapper.ID()
}

// SaveState returns the bank controller state for the save-state machinery.
func (cart *Cartridge) SaveState() BankState {
	return cart.mapper.SaveState()
}

// RestoreState reinstates bank controller state captured with SaveState().
func (cart *Cartridge) RestoreState(s BankState) {
	cart.mapper.RestoreState(s)
}
