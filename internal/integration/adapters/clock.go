package adapters

import (
	"time"

	"github.com/parsonage/property-ops/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface.
type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock reading wall time in the given location.
func NewSystemClock(loc *time.Location) adapter.Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &systemClock{loc: loc}
}

// Now returns the current time in the clock's location.
func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
