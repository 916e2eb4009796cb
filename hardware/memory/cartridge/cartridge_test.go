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

package cartridge_test

import (
	"testing"

	"github.com/hatless/gopherboy/cartridgeloader"
	"github.com/hatless/gopherboy/hardware/memory/cartridge"
	"github.com/hatless/gopherboy/test"
)

// buildImage assembles a minimal valid cartridge image with the given header
// fields. romSizeCode and ramSizeCode are the raw header bytes.
func buildImage(title string, controllerTag uint8, romSizeCode uint8, ramSizeCode uint8) []uint8 {
	size := 0x8000 << romSizeCode
	img := make([]uint8, size)
	copy(img[0x0134:0x0144], []uint8(title))
	img[0x0147] = controllerTag
	img[0x0148] = romSizeCode
	img[0x0149] = ramSizeCode
	return img
}

func attach(t *testing.T, cart *cartridge.Cartridge, img []uint8) {
	t.Helper()
	ldr := cartridgeloader.NewLoaderFromData("test.gb", img)
	err := cart.Attach(ldr)
	test.ExpectedSuccess(t, err)
}

func TestHeaderParsing(t *testing.T) {
	cart := cartridge.NewCartridge()
	attach(t, cart, buildImage("TESTROM", 0x00, 0x00, 0x00))

	test.Equate(t, cart.Header.Title, "TESTROM")
	test.Equate(t, cart.Header.Controller == cartridge.ControllerROM, true)
	test.Equate(t, cart.Header.ROMSize, 0x8000)
	test.Equate(t, cart.Header.RAMSize, 0)
	test.Equate(t, cart.MapperID(), "ROM")

	// with no RAM declared, RAM reads float high
	test.Equate(t, cart.ReadRAM(0x0000), 0xff)
}

func TestShortImageFails(t *testing.T) {
	cart := cartridge.NewCartridge()
	attach(t, cart, buildImage("FIRST", 0x00, 0x00, 0x00))

	// an image shorter than the header area must be rejected and the
	// previous cartridge must remain attached
	err := cart.Attach(cartridgeloader.NewLoaderFromData("short.gb", make([]uint8, 0x0100)))
	test.ExpectedFailure(t, err)
	test.Equate(t, cart.Header.Title, "FIRST")
	test.Equate(t, cart.IsEjected(), false)
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewCartridge()
	test.Equate(t, cart.IsEjected(), true)
	test.Equate(t, cart.Read(0x0000), 0xff)
	test.Equate(t, cart.ReadRAM(0x0000), 0xff)
}

func TestMBC1Banking(t *testing.T) {
	// 128k image, 8 banks, with 8k of RAM
	img := buildImage("MBC1", 0x01, 0x02, 0x02)
	for b := 0; b < 8; b++ {
		img[b*0x4000] = uint8(b)
	}

	cart := cartridge.NewCartridge()
	attach(t, cart, img)
	test.Equate(t, cart.MapperID(), "MBC1")

	// bank one is selected at reset
	test.Equate(t, cart.Read(0x4000), 0x01)

	// writing zero to the bank register selects bank one
	cart.Write(0x2000, 0x00)
	test.Equate(t, cart.Read(0x4000), 0x01)

	cart.Write(0x2000, 0x03)
	test.Equate(t, cart.Read(0x4000), 0x03)
	test.Equate(t, cart.CurrentBank(), 3)

	// bank numbers beyond the image wrap around
	cart.Write(0x2000, 0x0b)
	test.Equate(t, cart.Read(0x4000), 0x03)

	// lower window always shows bank zero in mode 0
	test.Equate(t, cart.Read(0x0000), 0x00)
}

func TestMBC1RAMEnable(t *testing.T) {
	cart := cartridge.NewCartridge()
	attach(t, cart, buildImage("MBC1RAM", 0x03, 0x01, 0x02))

	// RAM is disabled at power-on
	cart.WriteRAM(0x0000, 0x42)
	test.Equate(t, cart.ReadRAM(0x0000), 0xff)

	// only the low nibble 0x0a enables RAM
	cart.Write(0x0000, 0x0a)
	cart.WriteRAM(0x0000, 0x42)
	test.Equate(t, cart.ReadRAM(0x0000), 0x42)

	// any other value disables it again. content is retained
	cart.Write(0x0000, 0x00)
	test.Equate(t, cart.ReadRAM(0x0000), 0xff)
	cart.Write(0x0000, 0x1a)
	test.Equate(t, cart.ReadRAM(0x0000), 0x42)
}

func TestMBC3Banking(t *testing.T) {
	// 256k image, 16 banks
	img := buildImage("MBC3", 0x11, 0x03, 0x00)
	for b := 0; b < 16; b++ {
		img[b*0x4000] = uint8(b)
	}

	cart := cartridge.NewCartridge()
	attach(t, cart, img)
	test.Equate(t, cart.MapperID(), "MBC3")

	cart.Write(0x2000, 0x0f)
	test.Equate(t, cart.Read(0x4000), 0x0f)

	// zero maps to bank one
	cart.Write(0x2000, 0x00)
	test.Equate(t, cart.Read(0x4000), 0x01)
}

func TestMBC5BankZero(t *testing.T) {
	// 128k image, 8 banks
	img := buildImage("MBC5", 0x19, 0x02, 0x00)
	for b := 0; b < 8; b++ {
		img[b*0x4000] = uint8(b)
	}

	cart := cartridge.NewCartridge()
	attach(t, cart, img)
	test.Equate(t, cart.MapperID(), "MBC5")

	// unlike the other controllers, bank zero is selectable
	cart.Write(0x2000, 0x00)
	test.Equate(t, cart.Read(0x4000), 0x00)
	test.Equate(t, cart.CurrentBank(), 0)

	cart.Write(0x2000, 0x05)
	test.Equate(t, cart.Read(0x4000), 0x05)
}

func TestSaveRestoreState(t *testing.T) {
	cart := cartridge.NewCartridge()
	attach(t, cart, buildImage("STATE", 0x03, 0x01, 0x02))

	cart.Write(0x0000, 0x0a)
	cart.Write(0x2000, 0x02)
	cart.WriteRAM(0x0010, 0x99)

	s := cart.SaveState()

	cart.Reset()
	test.Equate(t, cart.ReadRAM(0x0010), 0xff)

	cart.RestoreState(s)
	test.Equate(t, cart.CurrentBank(), 2)
	test.Equate(t, cart.ReadRAM(0x0010), 0x99)
}
