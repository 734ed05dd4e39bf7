package snake

import (
	"math"
	"time"
)

// DelaySchedule computes the wait between simulation ticks. The delay
// starts at a configured value and decays exponentially with the
// snake's length: while above the floor it is recomputed each tick as
// floor(starting * 0.85^length); once it reaches the floor or drops
// below it, it freezes at the last computed value.
type DelaySchedule struct {
	startingMs int
	floorMs    int
	delayMs    int
}

// NewDelaySchedule creates a schedule with the given starting delay and
// floor, both in milliseconds.
func NewDelaySchedule(startingMs, floorMs int) *DelaySchedule {
	return &DelaySchedule{
		startingMs: startingMs,
		floorMs:    floorMs,
		delayMs:    startingMs,
	}
}

// Update recomputes the delay for the given snake length and returns
// the current delay in milliseconds.
func (s *DelaySchedule) Update(length int) int {
	if s.delayMs > s.floorMs {
		s.delayMs = int(float64(s.startingMs) * math.Pow(0.85, float64(length)))
	}
	return s.delayMs
}

// Delay returns the current delay in milliseconds without recomputing.
func (s *DelaySchedule) Delay() int {
	return s.delayMs
}

// Interval returns the current delay as a duration.
func (s *DelaySchedule) Interval() time.Duration {
	return time.Duration(s.delayMs) * time.Millisecond
}
