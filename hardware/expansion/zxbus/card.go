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
	"sort"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/hardware/memory/iomap"
	"github.com/jetsetilly/orchid/logger"
)

// Card is implemented by every device that can be inserted into a slot.
type Card interface {
	// ID returns the name of the card
	ID() string

	// SetBus is called when the slot the card is in is started
	SetBus(bus *Bus)

	// PreStart is called once all slots have been started. An error is
	// returned if the card has not been given a bus
	PreStart() error

	// Install the card's ports in the IO space of the bus
	Install(io *iomap.Map) error

	Reset()
}

// CardBase implements the bus handling common to all cards. It should be
// embedded in card types.
type CardBase struct {
	id  string
	bus *Bus
}

// ID implements the Card interface.
func (c *CardBase) ID() string {
	return c.id
}

// SetBus implements the Card interface.
func (c *CardBase) SetBus(bus *Bus) {
	c.bus = bus
}

// Bus returns the bus the card is attached to. Returns nil if the card is
// not attached.
func (c *CardBase) Bus() *Bus {
	return c.bus
}

// PreStart implements the Card interface.
func (c *CardBase) PreStart() error {
	if c.bus == nil {
		return curated.Errorf(MissingBus, c.id)
	}
	return nil
}

// permission for logging. a card that is not attached to a bus may have no
// environment
func permission(env *environment.Environment) logger.Permission {
	if env == nil {
		return logger.Allow
	}
	return env
}

// the available card options and the functions that create them
var cards = map[string]func(env *environment.Environment) Card{
	"neogs": func(env *environment.Environment) Card { return NewNeoGS(env) },
	"smuc":  func(env *environment.Environment) Card { return NewSMUC(env) },
}

// Cards returns the names of the available card options in alphabetical
// order.
func Cards() []string {
	names := make([]string, 0, len(cards))
	for n := range cards {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewCard creates a card from the named option. The card is not attached to
// a bus.
func NewCard(env *environment.Environment, option string) (Card, error) {
	create, ok := cards[option]
	if !ok {
		return nil, curated.Errorf(UnknownCard, option)
	}
	return create(env), nil
}
