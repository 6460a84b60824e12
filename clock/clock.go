// Package clock provides the time source used to stamp collected
// records. Production code uses Real; tests use Fake to pin the time.
package clock

import "time"

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
