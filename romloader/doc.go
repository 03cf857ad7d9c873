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

// Package romloader is used to load ROM images, video memory images and
// display lists from disk.
//
// Files can be plain binary files or can be compressed in a ZIP, 7z, RAR or
// gzip archive. The format is detected from the first bytes of the file. A
// gzip file may contain a tar archive. When loading from an archive, the
// first regular file with a matching extension is loaded. If no extensions
// are given then the first regular file is loaded.
//
// The simplest use of the Loader type:
//
//	ld := romloader.NewLoader("roms/sbp.zip")
//	ld.Extensions = []string{".p1", ".bin"}
//	err := ld.Load()
//
// After loading, the Data field contains the file data and the Hash field
// contains the SHA-1 hash of the data. Loaded files are limited to 8MiB.
package romloader
