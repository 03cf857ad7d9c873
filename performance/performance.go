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
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/hardware/board"
	"github.com/spf13/afero"
)

// Check the performance of the board. The board is run as quickly as
// possible for the leadtime and then measured for the duration.
//
// If profile is true then a CPU and a memory profile are written to the
// filesystem.
func Check(output io.Writer, fs afero.Fs, profile bool, b *board.Board, leadtime time.Duration, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive")
	}

	// signals false when the leadtime has elapsed and true when the
	// measurement period has finished
	timerChan := make(chan bool, 2)

	var startFrame int
	var endFrame int

	runner := func() error {
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(duration, func() {
				timerChan <- true
			})
		})

		return b.Run(func() (board.State, error) {
			select {
			case v := <-timerChan:
				if v {
					endFrame = b.Scr.Frame()
					return board.Ending, nil
				}
				startFrame = b.Scr.Frame()
			default:
			}
			return board.Running, nil
		})
	}

	err := cpuProfile(fs, profile, CPUProfile, runner)
	if err != nil {
		return err
	}

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, duration, b.Scr.FramePeriod())
	io.WriteString(output, fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy))

	return memProfile(fs, profile, MemProfile)
}
