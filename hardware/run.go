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

import "github.com/hatless/gopherboy/hardware/ppu"

// RunFrame executes one frame's worth of cycles. Instructions never split
// across the frame boundary, so the final instruction of a frame may push
// past the budget. The overshoot is carried into the next frame's budget
// rather than discarded.
func (dmg *DMG) RunFrame() {
	budget := ppu.CyclesPerFrame - dmg.overshoot
	consumed := 0
	for consumed < budget {
		consumed += dmg.Step()
	}
	dmg.overshoot = consumed - budget
}

// Run the console frame by frame until the continueCheck callback returns
// false. The callback runs between frames, never mid-frame.
func (dmg *DMG) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		dmg.RunFrame()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
