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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/hatless/gopherboy/curated"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".GB", ".GBC", ".DMG", ".BIN", ".ROM"}

// Loader is used to specify the cartridge to use when Attach()ing to the
// console.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return this
	// data rather than fetching it again
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// NewLoaderFromData creates a Loader from data already in memory. The
// filename is decorative but is reported in error messages.
func NewLoaderFromData(filename string, data []byte) Loader {
	return Loader{
		Filename: filename,
		Data:     data,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data and return it as a byte array. Loader filenames
// with a valid schema will use that method to load the data. Currently
// supported schemes are HTTP and local files.
func (cl *Loader) Load() ([]byte, error) {
	if len(cl.Data) > 0 {
		cl.setHash()
		return cl.Data, nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough
	case "":
		f, err := os.Open(cl.Filename)
		if err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}
		defer f.Close()

		cl.Data, err = ioutil.ReadAll(f)
		if err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return nil, curated.Errorf("cartridgeloader: unsupported scheme (%s)", scheme)
	}

	if err := cl.setHash(); err != nil {
		return nil, err
	}

	return cl.Data, nil
}

// setHash computes the hash of the loaded data, validating it against any
// expected hash already in the Loader.
func (cl *Loader) setHash() error {
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: unexpected hash value")
	}
	cl.Hash = hash
	return nil
}
