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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/orchid/hardware/preferences"
	"github.com/jetsetilly/orchid/test"
	"github.com/spf13/afero"
)

func TestDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	p, err := preferences.NewPreferencesFs(fs, "preferences")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Disasm.Get().(bool), false)
	test.ExpectEquality(t, p.VRAMSize.Get().(int), preferences.DefaultVRAMSize)
	test.ExpectEquality(t, p.FramePeriod.Get().(float64), preferences.DefaultFramePeriod)
	test.ExpectEquality(t, p.SBPPatch.Get().(bool), true)

	// the file is created on first use
	ok, err := afero.Exists(fs, "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, true)
}

func TestPersistence(t *testing.T) {
	fs := afero.NewMemMapFs()
	p, err := preferences.NewPreferencesFs(fs, "preferences")
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.VRAMSize.Set(0x100000))
	test.ExpectSuccess(t, p.Disasm.Set(true))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFs(fs, "preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.VRAMSize.Get().(int), 0x100000)
	test.ExpectEquality(t, q.Disasm.AllowLogging(), true)
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferencesFs(afero.NewMemMapFs(), "preferences")
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.VRAMSize.Set(0))
	test.ExpectEquality(t, p.VRAMSize.Get().(int), preferences.DefaultVRAMSize)
	test.ExpectFailure(t, p.FramePeriod.Set(-1.0))
}
