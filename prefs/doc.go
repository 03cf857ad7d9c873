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

// Package prefs facilitates the storage of preference values on disk. The
// Bool, Int, Float, String and Generic types are the preference values. Each
// value can have a hook function called before and after the value changes.
//
// Values are added to a Disk instance with a key. The preferences file is a
// text file with one "key :: value" pair on each line:
//
//	*** do not edit this file by hand ***
//	mb86292.dasm :: false
//	vram.size :: 8388608
//
// More than one Disk instance can share a preferences file. Saving from one
// instance will not clobber the values of another.
//
// The command line stack allows preference values to be specified on the
// command line. Values pushed with PushCommandLineStack() override the values
// on disk the next time Load() is called.
package prefs
