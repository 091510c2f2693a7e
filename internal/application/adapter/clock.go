package adapter

import "time"

//go:generate mockgen -destination=mocks/mock_clock.go -package=mocks -source=clock.go Clock

// Clock supplies the current time to use cases that default to "now".
type Clock interface {
	Now() time.Time
}
