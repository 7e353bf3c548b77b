// This file is part of Frontpanel.
//
// Frontpanel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frontpanel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frontpanel.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file while the program is running ***"

// separator between key and value in the preferences file.
const keySep = " :: "

// Sentinal errors returned by Disk functions.
const (
	NoPrefsFile  = "prefs: no preferences file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	LoadError    = "prefs: loading %s: %v"
	SaveError    = "prefs: saving %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// Path returns the path of the file the values are stored in.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
//
// Keys are case-insensitive and must be unique to the Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.ToLower(strings.TrimSpace(key))

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// readFile returns the key/value pairs in the preferences file. keys are not
// checked against the entries list.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(LoadError, dsk.path, err)
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the boilerplate warning is normally the first line but a hand written
	// file may not have it
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if strings.TrimSpace(line) == WarningBoilerPlate {
				continue // for loop
			}
		}

		k, v, ok := strings.Cut(line, keySep)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LoadError, dsk.path, err)
	}

	return data, nil
}

// Save current preference values to disk. Values in the file that are not
// part of this Disk instance are preserved. The file is replaced atomically
// so a reader of the file will never see a partial write.
func (dsk *Disk) Save() error {
	data, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return curated.Errorf(SaveError, dsk.path, err)
		}
		data = make(map[string]string)
	}

	dsk.crit.Lock()
	for k, p := range dsk.entries {
		data[k] = p.String()
	}
	dsk.crit.Unlock()

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, data[k]))
	}

	if err := atomic.WriteFile(dsk.path, strings.NewReader(s.String())); err != nil {
		return curated.Errorf(SaveError, dsk.path, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the
// preferences file does not exist, the current values are saved to create it.
//
// After loading from disk, any matching values in the top group of the
// command line stack are applied.
func (dsk *Disk) Load(saveOnFail bool) error {
	data, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) || !saveOnFail {
			return err
		}
		if err := dsk.Save(); err != nil {
			return err
		}
		data = nil
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
			}
		}
	}

	if SizeCommandLineStack() == 0 {
		return nil
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}

	return nil
}
