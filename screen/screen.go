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

// Package screen defines the dimensions of the console display and the
// interfaces through which frames and audio leave the emulation. Graphical
// frontends implement Renderer; audio frontends implement AudioMixer.
package screen

// Dimensions of the visible display.
const (
	// Width and Height of the display in pixels.
	Width  = 160
	Height = 144

	// Depth is the number of bytes per pixel in the framebuffer. Pixels
	// are stored in RGBA order.
	Depth = 4
)

// FramesPerSecond is the nominal refresh rate of the console.
const FramesPerSecond = 59.73

// Renderer implementations display or otherwise process frames produced by
// the emulation. The pixels slice is Width*Height*Depth bytes long and is
// valid only for the duration of the call.
type Renderer interface {
	NewFrame(pixels []uint8) error
}

// AudioMixer implementations work with sound samples produced by the
// emulation. Samples are in the range [-1, 1].
type AudioMixer interface {
	SetAudio(samples []float32) error
	EndMixing() error
}
