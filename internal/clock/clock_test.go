package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	c := RealClock{}
	before := time.Now()
	result := c.Now()
	after := time.Now()

	assert.False(t, result.Before(before), "RealClock.Now() should not be before the call")
	assert.False(t, result.After(after), "RealClock.Now() should not be after the call")
}

func TestMockClock_Now(t *testing.T) {
	fixed := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	c := NewMockClock(fixed)

	assert.Equal(t, fixed, c.Now())
	// Frozen until moved explicitly.
	assert.Equal(t, fixed, c.Now())
}

func TestMockClock_Set(t *testing.T) {
	c := NewMockClock(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	target := time.Date(2026, 12, 25, 12, 0, 0, 0, time.UTC)
	c.Set(target)
	assert.Equal(t, target, c.Now())
}

func TestMockClock_Advance(t *testing.T) {
	c := NewMockClock(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	c.Advance(90 * time.Minute)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), c.Now())

	c.Advance(-30 * time.Minute)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), c.Now())
}

func TestMockClock_ConcurrentAccess(t *testing.T) {
	c := NewMockClock(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Advance(time.Minute)
		}()
		go func() {
			defer wg.Done()
			_ = c.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2026, 3, 10, 8, 10, 0, 0, time.UTC), c.Now())
}
