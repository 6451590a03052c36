package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_SetAndAdvance(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewFake(start)
	assert.Equal(t, start, c.Now())

	c.Advance(48 * time.Hour)
	assert.Equal(t, start.Add(48*time.Hour), c.Now())

	c.Advance(-72 * time.Hour)
	assert.Equal(t, start.Add(-24*time.Hour), c.Now())

	later := time.Date(2025, 1, 1, 0, 0, 0, 0, time.FixedZone("EST", -5*3600))
	c.Set(later)
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, later.Equal(c.Now()))
}

func TestFakeClock_ConcurrentReaders(t *testing.T) {
	c := NewFake(time.Unix(0, 0))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Now()
			}
		}()
	}
	for j := 0; j < 100; j++ {
		c.Advance(time.Second)
	}
	wg.Wait()

	assert.Equal(t, time.Unix(100, 0).UTC(), c.Now())
}

func TestFixed(t *testing.T) {
	at := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, at, Fixed(at).Now())
	assert.False(t, RealClock{}.Now().IsZero())
}
