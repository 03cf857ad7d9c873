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

// Package neogeo implements the protection device found on the Super Bubble
// Pop cartridge for the Neo Geo.
//
// Reads from the protected area return the ROM data with the nibbles of each
// byte exchanged. Writes to the protected area are ignored. The game writes
// to one location as part of normal operation and those writes are accepted
// silently. Any other write is logged.
//
// The CPU ROM needs to be patched for the game to run correctly. The patch
// is applied by DecryptAll() when the sbp.patch preference is set.
package neogeo
