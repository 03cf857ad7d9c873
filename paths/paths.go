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

package paths

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// the filesystem on which resource directories are created
var fsys afero.Fs = afero.NewOsFs()

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths.
//
// The subPth argument should not include the leaf filename. The file argument
// can be empty, in which case the path to the directory is returned.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

func mkdir(pth string) (string, error) {
	if ok, _ := afero.DirExists(fsys, pth); ok {
		return pth, nil
	}
	if err := fsys.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}
	return pth, nil
}
