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
)

// Slot is a single connector on the bus. A slot may be empty.
type Slot struct {
	bus  *Bus
	name string
	card Card
}

// NewSlot creates a slot with the named card option inserted. An empty
// option creates an empty slot. The slot is added to the bus when the bus is
// started.
//
// A nil bus is allowed but the card will fail when it is started.
func NewSlot(bus *Bus, option string) (*Slot, error) {
	var env *environment.Environment
	sl := &Slot{bus: bus}

	if bus != nil {
		env = bus.env
		sl.name = fmt.Sprintf("zxbus%d", len(bus.pending)+len(bus.slots))
	} else {
		sl.name = "unattached"
	}

	if option != "" {
		create, ok := cards[option]
		if !ok {
			return nil, curated.Errorf(UnknownCard, option)
		}
		sl.card = create(env)
	}

	if bus != nil {
		bus.pending = append(bus.pending, sl)
	}

	return sl, nil
}

func (sl *Slot) String() string {
	if sl.card == nil {
		return fmt.Sprintf("%s: empty", sl.name)
	}
	return fmt.Sprintf("%s: %s", sl.name, sl.card.ID())
}

// Name of the slot.
func (sl *Slot) Name() string {
	return sl.name
}

// Card returns the card inserted in the slot. Returns nil if the slot is
// empty.
func (sl *Slot) Card() Card {
	return sl.card
}

// Start the slot. The card is given the bus and the slot is added to the
// bus.
func (sl *Slot) Start() {
	if sl.card != nil && sl.bus != nil {
		sl.card.SetBus(sl.bus)
	}
	if sl.bus != nil {
		sl.bus.AddSlot(sl)
	}
}
