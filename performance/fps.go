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

import "time"

// CalcFPS takes the number of frames and the duration and returns the
// frames-per-second and the accuracy of that value as a percentage of the
// frame period.
func CalcFPS(numFrames int, duration time.Duration, framePeriod time.Duration) (fps float64, accuracy float64) {
	if duration <= 0 || framePeriod <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration.Seconds()
	accuracy = 100 * fps * framePeriod.Seconds()
	return fps, accuracy
}
