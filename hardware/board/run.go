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

package board

import (
	"github.com/jetsetilly/orchid/curated"
)

// State of the emulation as returned by the continue check function of Run().
type State int

// List of valid emulation states.
const (
	Running State = iota
	Paused
	Ending
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Ending:
		return "Ending"
	}
	return "unknown state"
}

// Run the board one frame at a time until the continue check returns the
// Ending state or an error. No frames are run while the state is Paused. The
// continue check is called after every frame and is responsible for any
// pacing.
//
// If continueCheck is nil the board will run forever.
func (b *Board) Run(continueCheck func() (State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (State, error) { return Running, nil }
	}

	var err error

	state := Running
	for state != Ending {
		switch state {
		case Running:
			b.RunFrames(1)
		case Paused:
		default:
			return curated.Errorf("board: unsupported emulation state (%d) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the board for the number of frames. The continue
// check is called after every frame with the frame number and can end the
// run early.
func (b *Board) RunForFrameCount(numFrames int, continueCheck func(frame int) (State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (State, error) { return Running, nil }
	}

	for range numFrames {
		b.RunFrames(1)
		state, err := continueCheck(b.Scr.Frame())
		if err != nil {
			return err
		}
		if state == Ending {
			break // for loop
		}
	}

	return nil
}
