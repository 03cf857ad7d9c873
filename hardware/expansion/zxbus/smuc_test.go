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

package zxbus_test

import (
	"testing"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/hardware/expansion/zxbus"
	"github.com/jetsetilly/orchid/test"
	"github.com/spf13/afero"
)

func newSMUC(t *testing.T) (*zxbus.Bus, *zxbus.SMUC) {
	t.Helper()
	bus := zxbus.NewBus(newEnv(t))
	sl, err := zxbus.NewSlot(bus, "smuc")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, bus.Start())
	return bus, sl.Card().(*zxbus.SMUC)
}

func TestSMUCPorts(t *testing.T) {
	bus, c := newSMUC(t)

	test.ExpectEquality(t, bus.In(zxbus.SMUCVersion), uint8(0x02))

	// version register is read only
	bus.Out(zxbus.SMUCVersion, 0x55)
	test.ExpectEquality(t, bus.In(zxbus.SMUCVersion), uint8(0x02))

	bus.Out(zxbus.SMUCAddress, 0x10)
	bus.Out(zxbus.SMUCData, 0xaa)
	bus.Out(zxbus.SMUCAddress, 0x11)
	bus.Out(zxbus.SMUCData, 0xbb)

	test.ExpectEquality(t, bus.In(zxbus.SMUCAddress), uint8(0x11))
	test.ExpectEquality(t, bus.In(zxbus.SMUCData), uint8(0xbb))
	bus.Out(zxbus.SMUCAddress, 0x10)
	test.ExpectEquality(t, bus.In(zxbus.SMUCData), uint8(0xaa))

	nv := c.NVRAM()
	test.ExpectEquality(t, nv[0x10], uint8(0xaa))
	test.ExpectEquality(t, nv[0x11], uint8(0xbb))

	// reset clears the address but not the memory
	bus.Reset()
	test.ExpectEquality(t, bus.In(zxbus.SMUCAddress), uint8(0))
	test.ExpectEquality(t, c.NVRAM()[0x10], uint8(0xaa))
}

func TestSMUCNVRAMFile(t *testing.T) {
	bus, c := newSMUC(t)
	fs := afero.NewMemMapFs()

	// missing file is not an error
	test.ExpectSuccess(t, c.LoadNVRAM(fs, "smuc.nvram"))

	bus.Out(zxbus.SMUCAddress, 0xff)
	bus.Out(zxbus.SMUCData, 0x77)
	test.ExpectSuccess(t, c.SaveNVRAM(fs, "smuc.nvram"))

	_, d := newSMUC(t)
	test.ExpectSuccess(t, d.LoadNVRAM(fs, "smuc.nvram"))
	test.ExpectEquality(t, d.NVRAM()[0xff], uint8(0x77))

	test.DemandSuccess(t, afero.WriteFile(fs, "short.nvram", []byte{1, 2, 3}, 0o600))
	err := d.LoadNVRAM(fs, "short.nvram")
	test.ExpectEquality(t, curated.Is(err, zxbus.NVRAMLength), true)
}
