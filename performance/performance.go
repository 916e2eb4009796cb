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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/hatless/gopherboy/cartridgeloader"
	"github.com/hatless/gopherboy/curated"
	"github.com/hatless/gopherboy/hardware"
)

// sentinel error returned by the Run() loop when the measurement period is
// over.
const timedOut = "performance timed out"

// checking the timer channel is relatively expensive. only check it once
// every performanceBrake frames
const performanceBrake = 2

// Check the performance of the emulator using the supplied cartridge. The
// emulation runs headless for the specified duration.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, duration string) error {
	dmg, err := hardware.NewDMG()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = dmg.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := 0

	runner := func() error {
		// expires when the measurement duration has elapsed. a two
		// second leadtime lets the runtime warm up first. false on the
		// channel marks the start of measurement, true the end
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		brake := 0

		return dmg.Run(func() (bool, error) {
			numFrames++
			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case v := <-timerChan:
					if v {
						return false, curated.Errorf(timedOut)
					}
					// measurement begins now
					numFrames = 0
				default:
				}
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
