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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and of parsing the flags specific to each mode.
//
// A mode is selected by the first non-flag argument. If the argument is not
// one of the sub-modes registered with AddSubModes() then the default mode is
// used and the argument remains available to the caller.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "SBP")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		lco := md.AddUint("lco", 0, "display list count")
//		p, err = md.Parse()
//		...
//	}
//
// Modes and flags nest as deeply as required. Path() returns the full route
// taken through the modes, separated by a forward slash.
//
// Help is requested with the -help or -h flag. The help message lists the
// flags of the current mode along with any sub-modes.
package modalflag
