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

// Package logger is the logging package for the emulation. It is not a
// replacement for error handling. Devices in this emulation do not return
// errors from their bus operations so anything unusual (unmapped register
// accesses, unsupported display list commands, etc.) is noted in the log
// instead.
//
// The package level functions write to a single central log. Every log
// request is accompanied by a Permission, which allows the caller to decide at
// the time of the request whether the entry should be made. The Allow value
// is a good default.
//
//	logger.Log(logger.Allow, "CRTC", "screen off (H)")
//	logger.Logf(logger.Allow, "MB86292", "unmapped read %05x", addr)
//
// Adjacent entries that are the same are collapsed into one entry with a
// repeat count.
package logger
