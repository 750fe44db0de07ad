package modes

import "sync"

// latch delivers a round's result at most once.
type latch struct {
	once sync.Once
	fn   func(Result)
}

func newLatch(fn func(Result)) *latch {
	return &latch{fn: fn}
}

// fire reports whether this call delivered the result.
func (l *latch) fire(r Result) bool {
	delivered := false
	l.once.Do(func() {
		delivered = true
		if l.fn != nil {
			l.fn(r)
		}
	})
	return delivered
}
