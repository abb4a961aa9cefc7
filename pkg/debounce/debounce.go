package debounce

import (
	"time"

	"github.com/bep/debounce"
)

// New returns a trigger that collapses a burst of calls into a single call of
// fn, fired delay after the last call of the burst.
func New(fn func(), delay time.Duration) func() {
	debounced := debounce.New(delay)
	return func() {
		debounced(fn)
	}
}
