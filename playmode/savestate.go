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
	"io/ioutil"

	"github.com/hatless/gopherboy/curated"
	"github.com/hatless/gopherboy/logger"
	"github.com/hatless/gopherboy/paths"
)

const stateDir = "states"

// saveState writes a snapshot of the machine to a uniquely named file in the
// config directory.
func (pl *playmode) saveState() error {
	data, err := pl.dmg.SerialiseState()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	fn, err := paths.ResourcePath(stateDir, paths.UniqueFilename("state", pl.shortName))
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = ioutil.WriteFile(fn, data, 0644)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	logger.Logf("playmode", "state saved to %s", fn)

	return nil
}
