package services

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSlideOutOfRange = errors.New("carousel index out of range")

// Carousel cycles an index over n slides. Rotation is driven by Start and
// halted by Stop; manual navigation works whether or not it is running.
type Carousel struct {
	size     int
	interval time.Duration

	mu     sync.Mutex
	index  int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCarousel(size int, interval time.Duration) *Carousel {
	if size < 0 {
		size = 0
	}
	return &Carousel{size: size, interval: interval}
}

func (c *Carousel) Len() int {
	return c.size
}

func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Next advances to (i+1) mod n and returns the new index
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.size == 0 {
		return 0
	}
	c.index = (c.index + 1) % c.size
	return c.index
}

// Prev moves back to (i-1+n) mod n and returns the new index
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.size == 0 {
		return 0
	}
	c.index = (c.index - 1 + c.size) % c.size
	return c.index
}

func (c *Carousel) GoTo(i int) error {
	if i < 0 || i >= c.size {
		return ErrSlideOutOfRange
	}
	c.mu.Lock()
	c.index = i
	c.mu.Unlock()
	return nil
}

// Start begins automatic rotation. It is a no-op when already running, when
// there are fewer than two slides, or when the interval is not positive.
// Rotation ends on Stop or when ctx is cancelled.
func (c *Carousel) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil || c.size < 2 || c.interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Next()
			}
		}
	}()
}

// Stop halts rotation and waits for the rotation goroutine to exit. Safe to
// call more than once.
func (c *Carousel) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}
