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

// Package sdlplay is the SDL implementation of the screen.Renderer and
// gui.GUI interfaces. It presents the console display in a scalable window
// and forwards keyboard events to the emulation over the registered event
// channel.
//
// SDL requires that window handling happens on the main thread. The
// Service() function must be called repeatedly from the main thread; all
// feature requests are queued and serviced there.
package sdlplay

import (
	"io"

	"github.com/hatless/gopherboy/curated"
	"github.com/hatless/gopherboy/gui"
	"github.com/hatless/gopherboy/performance/limiter"
	"github.com/hatless/gopherboy/screen"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultScale = 3.0

// SdlPlay is the SDL implementation of the screen.Renderer interface.
type SdlPlay struct {
	// connects the SDL event queue with the emulation
	events chan gui.Event

	// limit frame updates to the console's refresh rate
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	// all audio is handled by the Audio type
	aud *Audio

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the amount of scaling applied to each pixel
	scale float32

	// feature requests are queued and serviced on the main thread. see
	// requests.go
	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		fpsCap:     true,
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	var err error

	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// SDL window. size is set in the setWindow() function. the window is
	// hidden until the first frame has been rendered
	scr.window, err = sdl.CreateWindow("Gopherboy",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it on every NewFrame(). scaling is applied by the renderer
	// in order to fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		screen.Width, screen.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.aud, err = NewAudio()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	if scale <= 0.0 {
		scale = defaultScale
	}
	err = scr.setWindow(scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.lmtr = limiter.NewFPSLimiter(screen.FramesPerSecond)

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.aud.EndMixing()

	err := scr.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}
}

// AudioMixer returns the SDL audio implementation. Suitable for connecting
// to the emulation.
func (scr *SdlPlay) AudioMixer() screen.AudioMixer {
	return scr.aud
}

// use scale of -1 to reapply the existing scale value.
func (scr *SdlPlay) setWindow(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(screen.Width) * scr.scale)
	h := int32(float32(screen.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	err := scr.renderer.SetScale(scr.scale, scr.scale)
	if err != nil {
		return err
	}

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// NewFrame implements the screen.Renderer interface.
func (scr *SdlPlay) NewFrame(pixels []uint8) error {
	if scr.fpsCap {
		scr.lmtr.Wait()
	}

	err := scr.texture.Update(nil, pixels, screen.Width*screen.Depth)
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
