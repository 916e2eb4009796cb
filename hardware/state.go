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

package hardware

import (
	"bytes"
	"encoding/gob"

	"github.com/hatless/gopherboy/curated"
)

// SerialiseState encodes a snapshot of the machine into an opaque byte
// stream.
func (dmg *DMG) SerialiseState() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(dmg.Snapshot()); err != nil {
		return nil, curated.Errorf("state: %v", err)
	}
	return buf.Bytes(), nil
}

// DeserialiseState restores the machine from a byte stream produced by
// SerialiseState. The same cartridge must be attached. The machine is left
// untouched on failure.
func (dmg *DMG) DeserialiseState(data []byte) error {
	var s State
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&s); err != nil {
		return curated.Errorf("state: %v", err)
	}
	if s.CartHash != dmg.Bus.Cart.Hash {
		return curated.Errorf("state: snapshot taken with a different cartridge")
	}
	dmg.Plumb(&s)
	return nil
}
