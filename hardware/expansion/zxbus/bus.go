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
	"strings"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/hardware/memory/iomap"
	"github.com/jetsetilly/orchid/logger"
)

// Sentinal error patterns.
const (
	MissingBus     = "zxbus: %s: card has no bus"
	UnknownCard    = "zxbus: unknown card option (%s)"
	AlreadyStarted = "zxbus: bus already started"
)

// Bus is the ZXBUS.
type Bus struct {
	env  *environment.Environment
	perm logger.Permission

	// the IO space shared by all cards
	io *iomap.Map

	// slots created with NewSlot() that have not yet been started
	pending []*Slot

	// slots in the order they were added. the most recently added slot is
	// at the front of the list
	slots []*Slot

	started bool
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(env *environment.Environment) *Bus {
	bus := &Bus{
		env:  env,
		perm: permission(env),
	}
	bus.io = iomap.NewMap("ZXBUS", bus.perm)
	return bus
}

func (bus *Bus) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("ZXBUS: %d slots", len(bus.slots)))
	for i, sl := range bus.slots {
		s.WriteString(fmt.Sprintf("\n%d: %s", i, sl))
	}
	return s.String()
}

// AddSlot adds the slot to the front of the slot list.
func (bus *Bus) AddSlot(sl *Slot) {
	bus.slots = append([]*Slot{sl}, bus.slots...)
}

// Slots returns the slots that have been added to the bus. The most recently
// added slot is first.
func (bus *Bus) Slots() []*Slot {
	return bus.slots
}

// IO returns the IO space of the bus.
func (bus *Bus) IO() *iomap.Map {
	return bus.io
}

// Start the bus. Every slot is started and then every card is checked for a
// bus reference. Cards install their ports once all slots have started.
func (bus *Bus) Start() error {
	if bus.started {
		return curated.Errorf(AlreadyStarted)
	}

	for _, sl := range bus.pending {
		sl.Start()
	}
	bus.pending = nil

	for _, sl := range bus.slots {
		if sl.card == nil {
			continue // for loop
		}
		if err := sl.card.PreStart(); err != nil {
			return err
		}
	}

	for _, sl := range bus.slots {
		if sl.card == nil {
			continue // for loop
		}
		if err := sl.card.Install(bus.io); err != nil {
			return curated.Errorf("zxbus: %v", err)
		}
		logger.Logf(bus.perm, "ZXBUS", "%s installed in slot %s", sl.card.ID(), sl.name)
	}

	bus.started = true

	return nil
}

// Reset every card on the bus.
func (bus *Bus) Reset() {
	for _, sl := range bus.slots {
		if sl.card != nil {
			sl.card.Reset()
		}
	}
}

// In reads from the IO port. Ports that no card responds to read as 0xff.
func (bus *Bus) In(port uint16) uint8 {
	if _, ok := bus.io.Lookup(uint32(port)); !ok {
		return 0xff
	}
	return bus.io.Read8(uint32(port))
}

// Out writes to the IO port. Writes to ports that no card responds to are
// ignored.
func (bus *Bus) Out(port uint16, data uint8) {
	if _, ok := bus.io.Lookup(uint32(port)); !ok {
		return
	}
	bus.io.Write8(uint32(port), data)
}
