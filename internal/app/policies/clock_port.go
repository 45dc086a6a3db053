package policies

import "time"

// Clock supplies "now" to the delivery layer. The engine itself never reads
// a clock; handlers resolve now once per request and pass it down.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
