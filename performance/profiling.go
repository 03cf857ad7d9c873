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

package performance

import (
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/orchid/curated"
	"github.com/spf13/afero"
)

// filenames of the profiles created by Check()
const (
	CPUProfile = "cpu.profile"
	MemProfile = "mem.profile"
)

func cpuProfile(fs afero.Fs, profile bool, outFile string, run func() error) error {
	if profile {
		f, err := fs.Create(outFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

func memProfile(fs afero.Fs, profile bool, outFile string) error {
	if profile {
		f, err := fs.Create(outFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
