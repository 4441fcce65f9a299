package gui

import (
	"fmt"
	"time"
)

// Clock is the elapsed-game stopwatch shown next to the status line.
type Clock struct {
	start time.Time
}

func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

func (cl *Clock) String() string {
	elapsed := time.Since(cl.start)
	return fmt.Sprintf("%d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
}

func (cl *Clock) Reset() {
	cl.start = time.Now()
}
