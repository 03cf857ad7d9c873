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

	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/hardware/memory/iomap"
	"github.com/jetsetilly/orchid/logger"
)

// NeoGS port addresses.
const (
	// write: command to the sound processor. read: status
	NeoGSCommand = 0x00bb

	// data to and from the sound processor
	NeoGSData = 0x00b3
)

// NeoGS status bits.
const (
	StatusCommand = 0x01
	StatusData    = 0x80
)

// DefaultSampleRAM is the size of the NeoGS sample memory.
const DefaultSampleRAM = 512 * 1024

// NeoGS is a General Sound style card. The host and the sound processor
// communicate through a command latch and a data latch. The sound processor
// is not emulated. Its side of the latches is available through the
// Command(), Receive() and Send() functions.
type NeoGS struct {
	CardBase

	env  *environment.Environment
	perm logger.Permission

	command     uint8
	commandFlag bool

	// the data latch is shared by both directions but each direction has
	// its own value
	toGS     uint8
	fromGS   uint8
	dataFlag bool

	ram     []uint8
	used    int
	samples []Sample
}

// NewNeoGS is the preferred method of initialisation for the NeoGS type.
func NewNeoGS(env *environment.Environment) *NeoGS {
	return &NeoGS{
		CardBase: CardBase{id: "neogs"},
		env:      env,
		perm:     permission(env),
		ram:      make([]uint8, DefaultSampleRAM),
	}
}

func (gs *NeoGS) String() string {
	return fmt.Sprintf("%s: status %02x: %d samples (%d of %d bytes)", gs.ID(), gs.Status(), len(gs.samples), gs.used, len(gs.ram))
}

// Install implements the Card interface.
func (gs *NeoGS) Install(io *iomap.Map) error {
	err := io.Install(NeoGSCommand, 1, "GSCMD",
		func(_ uint32) uint32 {
			return uint32(gs.Status())
		},
		func(data uint32, _ uint32) {
			gs.command = uint8(data)
			gs.commandFlag = true
			logger.Logf(gs.perm, gs.ID(), "command %02x", gs.command)
		},
	)
	if err != nil {
		return err
	}

	return io.Install(NeoGSData, 1, "GSDAT",
		func(_ uint32) uint32 {
			gs.dataFlag = false
			return uint32(gs.fromGS)
		},
		func(data uint32, _ uint32) {
			gs.toGS = uint8(data)
			gs.dataFlag = true
		},
	)
}

// Reset implements the Card interface. The latches are cleared. Sample
// memory is unaffected.
func (gs *NeoGS) Reset() {
	gs.command = 0
	gs.commandFlag = false
	gs.toGS = 0
	gs.fromGS = 0
	gs.dataFlag = false
}

// Status returns the value of the status register as seen by the host.
func (gs *NeoGS) Status() uint8 {
	var s uint8
	if gs.commandFlag {
		s |= StatusCommand
	}
	if gs.dataFlag {
		s |= StatusData
	}
	return s
}

// Command returns the most recent command from the host. The bool is false
// if there is no new command. Reading the command clears the command flag.
func (gs *NeoGS) Command() (uint8, bool) {
	if !gs.commandFlag {
		return gs.command, false
	}
	gs.commandFlag = false
	return gs.command, true
}

// Receive returns the most recent data from the host. The bool is false if
// there is no new data. Receiving data clears the data flag.
func (gs *NeoGS) Receive() (uint8, bool) {
	if !gs.dataFlag {
		return gs.toGS, false
	}
	gs.dataFlag = false
	return gs.toGS, true
}

// Send data to the host. The data flag is set until the host reads the data
// port.
func (gs *NeoGS) Send(data uint8) {
	gs.fromGS = data
	gs.dataFlag = true
}
