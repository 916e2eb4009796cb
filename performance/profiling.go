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
	"os"
	"runtime/pprof"

	"github.com/hatless/gopherboy/curated"
)

// RunProfiler runs the supplied function, optionally through the CPU
// profiler. The profile is written to a file named after the tag.
func RunProfiler(profile bool, tag string, run func() error) error {
	if !profile {
		return run()
	}

	f, err := os.Create(fmt.Sprintf("%s_cpu.profile", tag))
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}
