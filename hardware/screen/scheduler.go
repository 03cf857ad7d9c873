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

package screen

import (
	"fmt"
	"time"
)

// Scheduler keeps virtual time and fires timers.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (sch *Scheduler) Now() time.Duration {
	return sch.now
}

// NewTimer creates a new timer. The timer is not pending until Adjust() is
// called.
func (sch *Scheduler) NewTimer(name string, cb func()) *Timer {
	t := &Timer{
		sch:  sch,
		name: name,
		cb:   cb,
	}
	sch.timers = append(sch.timers, t)
	return t
}

// next returns the earliest pending timer that fires no later than the limit.
// timers that fire at the same time are returned in the order they were
// created
func (sch *Scheduler) next(limit time.Duration) *Timer {
	var next *Timer
	for _, t := range sch.timers {
		if !t.pending || t.when > limit {
			continue
		}
		if next == nil || t.when < next.when {
			next = t
		}
	}
	return next
}

// Run advances virtual time by the duration, firing timers in time order.
func (sch *Scheduler) Run(d time.Duration) {
	limit := sch.now + d
	for {
		t := sch.next(limit)
		if t == nil {
			break // for loop
		}
		sch.now = t.when
		t.pending = false
		t.fired++
		if t.cb != nil {
			t.cb()
		}
	}
	sch.now = limit
}

// Timer is a single event in virtual time.
type Timer struct {
	sch     *Scheduler
	name    string
	cb      func()
	when    time.Duration
	pending bool
	fired   int
}

func (t *Timer) String() string {
	if !t.pending {
		return fmt.Sprintf("%s: never", t.name)
	}
	return fmt.Sprintf("%s: in %v", t.name, t.when-t.sch.now)
}

// Adjust the timer so that it fires after the duration. A duration of less
// than or equal to zero fires on the next call to Run().
func (t *Timer) Adjust(d time.Duration) {
	t.when = t.sch.now + d
	t.pending = true
}

// Never cancels the timer.
func (t *Timer) Never() {
	t.pending = false
}

// Pending returns true if the timer is due to fire.
func (t *Timer) Pending() bool {
	return t.pending
}

// Remaining returns the time until the timer fires. The value is meaningless
// if the timer is not pending.
func (t *Timer) Remaining() time.Duration {
	return t.when - t.sch.now
}

// Fired returns the number of times the timer has fired.
func (t *Timer) Fired() int {
	return t.fired
}
