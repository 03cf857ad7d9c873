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

// Package iomap implements a little-endian 32-bit address map of device
// registers. Registers are installed with a width of one, two or four bytes and
// must be naturally aligned.
//
// Accesses are made a dword at a time with a mask selecting the byte lanes.
// The map splits the access so that each register sees only its own lanes.
// This means that two 8-bit registers can share a 16-bit word, and that a
// 32-bit write spanning two 16-bit registers calls both write functions.
//
// Reads and writes to addresses with no register are logged and reads return
// zero in the unmapped lanes.
package iomap
