package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCarouselNavigation(t *testing.T) {
	c := NewCarousel(4, 0)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 0, c.Current())

	t.Run("Next wraps around", func(t *testing.T) {
		assert.Equal(t, 1, c.Next())
		assert.Equal(t, 2, c.Next())
		assert.Equal(t, 3, c.Next())
		assert.Equal(t, 0, c.Next())
	})

	t.Run("Prev wraps around", func(t *testing.T) {
		assert.Equal(t, 3, c.Prev())
		assert.Equal(t, 2, c.Prev())
	})

	t.Run("GoTo", func(t *testing.T) {
		assert.NoError(t, c.GoTo(1))
		assert.Equal(t, 1, c.Current())
		assert.ErrorIs(t, c.GoTo(4), ErrSlideOutOfRange)
		assert.ErrorIs(t, c.GoTo(-1), ErrSlideOutOfRange)
		assert.Equal(t, 1, c.Current())
	})
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(0, time.Millisecond)
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Prev())
	assert.ErrorIs(t, c.GoTo(0), ErrSlideOutOfRange)

	c.Start(context.Background())
	assert.False(t, c.Running())
}

func TestCarouselAutoAdvance(t *testing.T) {
	c := NewCarousel(3, 5*time.Millisecond)
	c.Start(context.Background())
	defer c.Stop()

	assert.True(t, c.Running())
	assert.Eventually(t, func() bool { return c.Current() != 0 }, time.Second, time.Millisecond)

	c.Stop()
	assert.False(t, c.Running())
	stopped := c.Current()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, c.Current())

	// Second Stop is a no-op
	c.Stop()
}

func TestCarouselStartConditions(t *testing.T) {
	t.Run("Single slide does not rotate", func(t *testing.T) {
		c := NewCarousel(1, time.Millisecond)
		c.Start(context.Background())
		assert.False(t, c.Running())
	})

	t.Run("Zero interval does not rotate", func(t *testing.T) {
		c := NewCarousel(3, 0)
		c.Start(context.Background())
		assert.False(t, c.Running())
	})

	t.Run("Start twice keeps one loop", func(t *testing.T) {
		c := NewCarousel(3, time.Hour)
		c.Start(context.Background())
		c.Start(context.Background())
		assert.True(t, c.Running())
		c.Stop()
		assert.False(t, c.Running())
	})

	t.Run("Context cancellation ends rotation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		c := NewCarousel(3, 5*time.Millisecond)
		c.Start(ctx)
		cancel()

		// Stop still returns once the goroutine has exited
		done := make(chan struct{})
		go func() {
			c.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Stop did not return")
		}
	})
}
