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

// Package playmode sets the emulation running without any debugging
// features. The emulation is driven frame by frame with frames and audio
// handed to the attached renderer and mixers between frames.
package playmode

import (
	"os"
	"os/signal"

	"github.com/hatless/gopherboy/cartridgeloader"
	"github.com/hatless/gopherboy/curated"
	"github.com/hatless/gopherboy/gui"
	"github.com/hatless/gopherboy/hardware"
	"github.com/hatless/gopherboy/screen"
)

// sentinal error returned when the GUI detects a quit event.
const quitEvent = "user input quit event"

// Renderer is the union of interfaces required of a playmode GUI.
type Renderer interface {
	gui.GUI
	screen.Renderer
}

type playmode struct {
	dmg    *hardware.DMG
	scr    Renderer
	mixers []screen.AudioMixer

	// short cartridge name, used when naming saved states
	shortName string

	// gui events are received over this channel from the GUI's Service()
	// function
	events chan gui.Event

	intChan chan os.Signal
}

// Play sets the emulation running - without any debugging features.
// Blocks until the emulation ends.
func Play(dmg *hardware.DMG, scr Renderer, cartload cartridgeloader.Loader, mixers ...screen.AudioMixer) error {
	pl := &playmode{
		dmg:       dmg,
		scr:       scr,
		mixers:    mixers,
		shortName: cartload.ShortName(),
		events:    make(chan gui.Event, 2),
	}

	err := dmg.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// connect gui
	err = scr.SetFeature(gui.ReqSetEventChan, pl.events)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	defer func() {
		for _, m := range pl.mixers {
			_ = m.EndMixing()
		}
	}()

	// we need to end mixing gracefully even when ctrl-c is pressed.
	// redirect interrupt signal to an os.Signal channel
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)

	err = dmg.Run(pl.frameHandler)
	if err != nil {
		if curated.Is(err, quitEvent) {
			return nil
		}
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

// frameHandler is the continueCheck callback given to the frame driver. It
// runs between frames, never mid-frame.
func (pl *playmode) frameHandler() (bool, error) {
	err := pl.scr.NewFrame(pl.dmg.Pixels())
	if err != nil {
		return false, err
	}

	samples := pl.dmg.AudioSamples()
	if len(samples) > 0 {
		for _, m := range pl.mixers {
			err = m.SetAudio(samples)
			if err != nil {
				return false, err
			}
		}
	}

	select {
	case <-pl.intChan:
		return false, nil
	case ev := <-pl.events:
		switch ev := ev.(type) {
		case gui.EventQuit:
			return false, nil
		case gui.EventKeyboard:
			err = pl.keyboardEventHandler(ev)
			return err == nil, err
		}
	default:
	}

	return true, nil
}
