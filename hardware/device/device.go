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

// Package device defines the capabilities that an emulated device can have.
// A device implements only the interfaces that make sense for it. For
// example, the SBP protection device is Addressable and Resettable but has no
// state worth serialising.
package device

// Addressable is implemented by devices that respond to reads and writes on a
// 32-bit little-endian bus. The address is dword aligned and the mask selects
// the byte lanes taking part in the access.
type Addressable interface {
	Read(addr uint32, mask uint32) uint32
	Write(addr uint32, data uint32, mask uint32)
}

// Resettable is implemented by devices that can be returned to their power-on
// state.
type Resettable interface {
	Reset()
}

// Serializable is implemented by devices whose state can be saved and
// restored. The format of the snapshot is private to the device.
type Serializable interface {
	Snapshot() []byte
	Plumb(data []byte) error
}

// Named is implemented by all devices. The ID is used as the tag for log
// entries.
type Named interface {
	ID() string
}
