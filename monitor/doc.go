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

// Package monitor is an interactive command line for inspecting and
// controlling an Orchid board. Registers and video memory can be read and
// written, display lists disassembled and the board run for a number of
// frames.
//
// Commands are not case sensitive and can be abbreviated so long as the
// abbreviation is not ambiguous. The HELP command lists every command.
//
// Input and output is through an implementation of the terminal.Terminal
// interface. See the plainterm and colorterm packages.
package monitor
