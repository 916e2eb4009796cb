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

package playmode

import (
	"github.com/hatless/gopherboy/curated"
	"github.com/hatless/gopherboy/gui"
	"github.com/hatless/gopherboy/hardware/memory"
)

// mapping of host keyboard keys to console buttons. key names are those
// returned by sdl.GetKeyName().
var keyMap = map[string]int{
	"Z":           memory.ButtonA,
	"X":           memory.ButtonB,
	"Return":      memory.ButtonStart,
	"Right Shift": memory.ButtonSelect,
	"Up":          memory.ButtonUp,
	"Down":        memory.ButtonDown,
	"Left":        memory.ButtonLeft,
	"Right":       memory.ButtonRight,
}

// keyboardEventHandler handles key presses for play mode. The Escape key
// ends the emulation, F1 saves the machine state, everything else is passed
// to the joypad.
func (pl *playmode) keyboardEventHandler(ev gui.EventKeyboard) error {
	if ev.Key == "Escape" && ev.Down {
		return curated.Errorf(quitEvent)
	}

	if ev.Key == "F1" && ev.Down {
		return pl.saveState()
	}

	if button, ok := keyMap[ev.Key]; ok {
		pl.dmg.SetButton(button, ev.Down)
	}

	return nil
}
