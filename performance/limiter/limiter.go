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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
//
// A limit of zero or less means that Wait() never blocks.
package limiter

import (
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond float64
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond

	if framesPerSecond <= 0 {
		lim.Stop()
		return
	}

	d := time.Duration(float64(time.Second) / framesPerSecond)
	if lim.ticker == nil {
		lim.ticker = time.NewTicker(d)
	} else {
		lim.ticker.Reset(d)
	}
}

// Limit returns the current limit. A value of zero or less means there is no
// limit.
func (lim *FpsLimiter) Limit() float64 {
	return lim.framesPerSecond
}

// Stop the limiter. Wait() will no longer block.
func (lim *FpsLimiter) Stop() {
	if lim.ticker != nil {
		lim.ticker.Stop()
		lim.ticker = nil
	}
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	if lim.ticker == nil {
		return
	}
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	if lim.ticker == nil {
		return true
	}
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}
