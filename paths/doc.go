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

// Package paths contains functions to prepare paths to orchid resources.
//
// The ResourcePath() function prepends the supplied sub-path and filename
// with the appropriate config directory. For example, the following will
// return the path to the screenshots directory.
//
//	d, err := paths.ResourcePath("screenshots", "")
//
// In development builds the base path is ".orchid" in the current directory.
// Release builds (built with the "release" tag) use the user's config
// directory as reported by os.UserConfigDir(). On a modern Linux system the
// path for the example above would be:
//
//	/home/user/.config/orchid/screenshots
//
// The directory (but not the file) is created if it does not already exist.
package paths
