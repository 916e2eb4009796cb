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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/hatless/gopherboy/curated"
)

// HeaderSize is the number of bytes from the start of the image that must be
// present for the header to be parseable. Images shorter than this fail the
// load.
const HeaderSize = 0x0150

// locations of the header fields inside the image.
const (
	titleStart     = 0x0134
	titleEnd       = 0x0144
	cgbFlagAddr    = 0x0143
	controllerAddr = 0x0147
	romSizeAddr    = 0x0148
	ramSizeAddr    = 0x0149
)

// baseBankSize is the size of one ROM bank. Declared ROM size is always a
// power-of-two multiple of this. ramBankSize is the size of one external RAM
// bank, equal to the cartridge RAM window.
const (
	baseBankSize = 0x4000
	ramBankSize  = 0x2000
)

// Controller is the cartridge controller type tag from the header.
type Controller uint8

// The controller classes recognised by this emulation. The raw header byte
// distinguishes many more variants (battery, rumble, etc) but they all reduce
// to one of these banking behaviours.
const (
	ControllerROM Controller = iota
	ControllerMBC1
	ControllerMBC3
	ControllerMBC5
	ControllerUnknown
)

func (c Controller) String() string {
	switch c {
	case ControllerROM:
		return "ROM"
	case ControllerMBC1:
		return "MBC1"
	case ControllerMBC3:
		return "MBC3"
	case ControllerMBC5:
		return "MBC5"
	}
	return "unknown"
}

// Header is the immutable description of a cartridge, parsed from the fixed
// header region of the image.
type Header struct {
	Title      string
	Controller Controller

	// the raw controller type byte from the image. retained so unknown
	// variants can be reported usefully
	ControllerTag uint8

	// declared sizes in bytes
	ROMSize int
	RAMSize int

	// the image declares colour-console enhancements. this emulation runs
	// everything in the monochrome mode
	ColorMode bool
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s] ROM=%dk RAM=%dk", h.Title, h.Controller, h.ROMSize/1024, h.RAMSize/1024)
}

// the console's fixed RAM size table, indexed by the header's RAM size byte.
var ramSizeTable = map[uint8]int{
	0x00: 0,
	0x01: 0,
	0x02: 8192,
	0x03: 32768,
	0x04: 131072,
	0x05: 65536,
}

// parseHeader reads the fixed header region of a cartridge image. The image
// must be at least HeaderSize bytes long.
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, curated.Errorf("cartridge: image too small (%d bytes)", len(data))
	}

	hdr := Header{}

	// title is upper-case ASCII padded with zero bytes
	hdr.Title = strings.TrimRight(string(data[titleStart:titleEnd]), "\x00")

	hdr.ColorMode = data[cgbFlagAddr] == 0x80 || data[cgbFlagAddr] == 0xc0

	hdr.ControllerTag = data[controllerAddr]
	switch {
	case hdr.ControllerTag == 0x00 || hdr.ControllerTag == 0x08 || hdr.ControllerTag == 0x09:
		hdr.Controller = ControllerROM
	case hdr.ControllerTag >= 0x01 && hdr.ControllerTag <= 0x03:
		hdr.Controller = ControllerMBC1
	case hdr.ControllerTag >= 0x0f && hdr.ControllerTag <= 0x13:
		hdr.Controller = ControllerMBC3
	case hdr.ControllerTag >= 0x19 && hdr.ControllerTag <= 0x1e:
		hdr.Controller = ControllerMBC5
	default:
		hdr.Controller = ControllerUnknown
	}

	hdr.ROMSize = (2 * baseBankSize) << data[romSizeAddr]

	if sz, ok := ramSizeTable[data[ramSizeAddr]]; ok {
		hdr.RAMSize = sz
	} else {
		hdr.RAMSize = 0
	}

	return hdr, nil
}
