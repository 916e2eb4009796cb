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

package memorymap

// Addresses of the memory mapped hardware registers in the I/O block.
const (
	AddressJOYP = uint16(0xff00)
	AddressDIV  = uint16(0xff04)
	AddressTIMA = uint16(0xff05)
	AddressTMA  = uint16(0xff06)
	AddressTAC  = uint16(0xff07)
	AddressIF   = uint16(0xff0f)
	AddressLCDC = uint16(0xff40)
	AddressSTAT = uint16(0xff41)
	AddressSCY  = uint16(0xff42)
	AddressSCX  = uint16(0xff43)
	AddressLY   = uint16(0xff44)
	AddressLYC  = uint16(0xff45)
	AddressDMA  = uint16(0xff46)
	AddressBGP  = uint16(0xff47)
	AddressOBP0 = uint16(0xff48)
	AddressOBP1 = uint16(0xff49)
	AddressWY   = uint16(0xff4a)
	AddressWX   = uint16(0xff4b)
)

// The interrupt bits used in both the IF and IE registers, lowest priority
// vector first.
const (
	InterruptVBlank = uint8(0x01)
	InterruptSTAT   = uint8(0x02)
	InterruptTimer  = uint8(0x04)
	InterruptSerial = uint8(0x08)
	InterruptJoypad = uint8(0x10)
)
