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

// Package zxbus implements the ZXBUS expansion bus. Cards are inserted into
// slots and the slots are added to the bus when the bus is started.
//
// The life of a bus is in two phases. In the first phase slots are created
// with NewSlot(), naming the card option that is to be inserted into the
// slot. In the second phase the bus is started with Bus.Start(). Each slot is
// started in turn, which gives the card a reference to the bus and adds the
// slot to the front of the bus's slot list. Finally, every card is checked to
// make sure it has a bus and is given the opportunity to install its IO ports.
//
// The available card options are listed by Cards().
package zxbus
