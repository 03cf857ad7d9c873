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

package zxbus

import (
	"fmt"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/hardware/memory/iomap"
	"github.com/jetsetilly/orchid/logger"
	"github.com/spf13/afero"
)

// SMUC port addresses.
const (
	SMUCVersion = 0x5fba
	SMUCAddress = 0xdfba
	SMUCData    = 0xdfbb
)

// the value returned by the version register
const smucVersion = 0x02

// NVRAMSize is the number of bytes in the SMUC non-volatile memory.
const NVRAMSize = 256

// Sentinal error patterns.
const (
	NVRAMLength = "smuc: nvram file is the wrong size (%d bytes)"
)

// SMUC is a controller card with a version register and a window onto
// non-volatile memory. The NVRAM address is set by writing to the address
// port and the addressed byte is accessed through the data port.
type SMUC struct {
	CardBase

	perm logger.Permission

	addr  uint8
	nvram [NVRAMSize]uint8
}

// NewSMUC is the preferred method of initialisation for the SMUC type.
func NewSMUC(env *environment.Environment) *SMUC {
	return &SMUC{
		CardBase: CardBase{id: "smuc"},
		perm:     permission(env),
	}
}

func (c *SMUC) String() string {
	return fmt.Sprintf("%s: version %02x: address %02x", c.ID(), smucVersion, c.addr)
}

// Install implements the Card interface.
func (c *SMUC) Install(io *iomap.Map) error {
	err := io.Install(SMUCVersion, 1, "VER",
		func(_ uint32) uint32 {
			return smucVersion
		},
		nil,
	)
	if err != nil {
		return err
	}

	err = io.Install(SMUCAddress, 1, "NVADR",
		func(_ uint32) uint32 {
			return uint32(c.addr)
		},
		func(data uint32, _ uint32) {
			c.addr = uint8(data)
		},
	)
	if err != nil {
		return err
	}

	return io.Install(SMUCData, 1, "NVDAT",
		func(_ uint32) uint32 {
			return uint32(c.nvram[c.addr])
		},
		func(data uint32, _ uint32) {
			c.nvram[c.addr] = uint8(data)
			logger.Logf(c.perm, c.ID(), "nvram[%02x] <- %02x", c.addr, uint8(data))
		},
	)
}

// Reset implements the Card interface. The address latch is cleared. NVRAM
// is unaffected.
func (c *SMUC) Reset() {
	c.addr = 0
}

// NVRAM returns a copy of the non-volatile memory.
func (c *SMUC) NVRAM() []uint8 {
	d := make([]uint8, NVRAMSize)
	copy(d, c.nvram[:])
	return d
}

// LoadNVRAM fills the non-volatile memory from a file. A file that does not
// exist is not an error and the NVRAM is left unchanged.
func (c *SMUC) LoadNVRAM(fs afero.Fs, path string) error {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return curated.Errorf("smuc: %v", err)
	}
	if !ok {
		return nil
	}

	d, err := afero.ReadFile(fs, path)
	if err != nil {
		return curated.Errorf("smuc: %v", err)
	}
	if len(d) != NVRAMSize {
		return curated.Errorf(NVRAMLength, len(d))
	}
	copy(c.nvram[:], d)

	return nil
}

// SaveNVRAM writes the non-volatile memory to a file.
func (c *SMUC) SaveNVRAM(fs afero.Fs, path string) error {
	if err := afero.WriteFile(fs, path, c.nvram[:], 0o600); err != nil {
		return curated.Errorf("smuc: %v", err)
	}
	return nil
}
