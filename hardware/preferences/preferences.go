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

package preferences

import (
	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/paths"
	"github.com/jetsetilly/orchid/prefs"
	"github.com/spf13/afero"
)

// Default values for the hardware preferences.
const (
	DefaultVRAMSize    = 8 * 1024 * 1024
	DefaultFramePeriod = 60.0
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// log every display list command as it is executed. the value implements
	// the logger.Permission interface
	Disasm prefs.Bool

	VRAMSize      prefs.Int
	VRAMRandomise prefs.Bool

	// the frequency of the screen in Hz
	FramePeriod prefs.Float

	SBPPatch prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFs(afero.NewOsFs(), pth)
}

// NewPreferencesFs is the same as NewPreferences() except that the filesystem
// and path of the preferences file are specified.
func NewPreferencesFs(fs afero.Fs, pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDiskFs(fs, pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if err := p.dsk.Add("mb86292.dasm", &p.Disasm); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("vram.size", &p.VRAMSize); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("vram.randomise", &p.VRAMRandomise); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("screen.frameperiod", &p.FramePeriod); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("sbp.patch", &p.SBPPatch); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.VRAMSize.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("preferences: vram.size must be positive (%d)", v)
		}
		return nil
	})

	p.FramePeriod.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return curated.Errorf("preferences: screen.frameperiod must be positive (%v)", v)
		}
		return nil
	})

	err = p.dsk.Load(true)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all values to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Disasm.Set(false)
	_ = p.VRAMSize.Set(DefaultVRAMSize)
	_ = p.VRAMRandomise.Set(false)
	_ = p.FramePeriod.Set(DefaultFramePeriod)
	_ = p.SBPPatch.Set(true)
}

// Load values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
