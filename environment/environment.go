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

// Package environment is the set of resources shared by the devices of an
// emulation. Every device constructor takes an Environment.
package environment

import (
	"github.com/jetsetilly/orchid/hardware/preferences"
	"github.com/jetsetilly/orchid/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retrieved through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If the prefs argument is nil then a new instance of the
// preferences is created, loading values from the global preferences file.
func NewEnvironment(coords random.Coords, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Random: random.NewRandom(coords),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is that of the main
// emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is permitted to write to the log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
