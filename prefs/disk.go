// This file is part of Orchid.
//
// Orchid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Orchid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Orchid.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/orchid/curated"
	"github.com/spf13/afero"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates the key and the value in the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	MalformedFile = "prefs: malformed prefs file (%s)"
)

// Disk represents preference values as stored on disk. More than one Disk
// instance can use the same file. Values belonging to other instances are
// preserved when saving.
type Disk struct {
	fs      afero.Fs
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is on the host operating system's filesystem.
func NewDisk(path string) (*Disk, error) {
	return NewDiskFs(afero.NewOsFs(), path)
}

// NewDiskFs is the same as NewDisk() except that the filesystem is
// specified. Useful for testing where an in-memory filesystem is preferred.
func NewDiskFs(fs afero.Fs, path string) (*Disk, error) {
	return &Disk{
		fs:      fs,
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the preferences file into a map of strings. a missing file is not an
// error but the returned bool will be false
func (dsk *Disk) read() (map[string]string, bool, error) {
	values := make(map[string]string)

	f, err := dsk.fs.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, false, nil
		}
		return nil, false, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line of the file must be the warning boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, false, curated.Errorf(MalformedFile, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		if isDefunct(k) {
			continue
		}
		values[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, false, curated.Errorf("prefs: %v", err)
	}

	return values, true, nil
}

// Save current preference values to disk. Values in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, values[k]))
	}

	err = afero.WriteFile(dsk.fs, dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Any values on the current command line
// stack are applied after the disk values.
//
// If the file does not exist then the NoPrefsFile error is returned. Callers
// will probably want to ignore that error. If saveOnFirstUse is true then the
// file is created with the current values when it does not exist.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	values, exists, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range values {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	if !exists {
		if saveOnFirstUse {
			return dsk.Save()
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}
