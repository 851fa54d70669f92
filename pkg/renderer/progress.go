package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// Progress counts completed pixels. Workers only ever increment it; readers may
// observe any intermediate value.
type Progress struct {
	done  atomic.Int64
	total int64
}

// NewProgress creates a counter for total pixels
func NewProgress(total int) *Progress {
	return &Progress{total: int64(total)}
}

// Add records n more completed pixels
func (p *Progress) Add(n int) {
	p.done.Add(int64(n))
}

// Done returns the number of completed pixels
func (p *Progress) Done() int64 {
	return p.done.Load()
}

// Total returns the number of pixels in the render
func (p *Progress) Total() int64 {
	return p.total
}

// Fraction returns completion in [0, 1]
func (p *Progress) Fraction() float64 {
	if p.Total() == 0 {
		return 1
	}
	return float64(p.Done()) / float64(p.Total())
}

// StartReporter logs progress every interval until the returned stop function is called.
// A non-positive interval disables reporting.
func (p *Progress) StartReporter(logger core.Logger, interval time.Duration) (stop func()) {
	if interval <= 0 {
		return func() {}
	}

	quit := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				logger.Printf("\rRendered %d/%d pixels (%.1f%%)", p.Done(), p.Total(), 100*p.Fraction())
			case <-quit:
				return
			}
		}
	}()

	return func() {
		close(quit)
		<-finished
	}
}
