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

package sdlplay

import (
	"encoding/binary"
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// SampleFreq is the rate at which the audio device consumes samples.
const SampleFreq = 44100

// the buffer length is important to get right. we don't want it to be long
// because we can introduce unnecessary lag between the audio and video
// signal; by the same token we don't want it too short because the device
// will underflow
const bufferLength = 1024

// Audio outputs sound using SDL. It implements the screen.AudioMixer
// interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_F32SYS,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the screen.AudioMixer interface.
func (aud *Audio) SetAudio(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	b := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(s))
	}

	return sdl.QueueAudio(aud.id, b)
}

// EndMixing implements the screen.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
