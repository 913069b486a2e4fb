package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBegin_SecondClaimDeniedWhileHeld(t *testing.T) {
	guard := NewInflightSubmissions()

	assert.True(t, guard.Begin("p1:careteam", time.Minute))
	assert.False(t, guard.Begin("p1:careteam", time.Minute))

	// other keys are independent
	assert.True(t, guard.Begin("p1:vitals", time.Minute))
	assert.True(t, guard.Begin("p2:careteam", time.Minute))
}

func TestRelease_ReopensTheSlot(t *testing.T) {
	guard := NewInflightSubmissions()

	assert.True(t, guard.Begin("p1:careteam", time.Minute))
	guard.Release("p1:careteam")
	assert.True(t, guard.Begin("p1:careteam", time.Minute))
}

func TestRelease_UnclaimedKeyIsNoop(t *testing.T) {
	guard := NewInflightSubmissions()
	guard.Release("never-claimed")
	assert.True(t, guard.Begin("never-claimed", time.Minute))
}

func TestBegin_ExpiredSlotCanBeReclaimed(t *testing.T) {
	guard := NewInflightSubmissions()

	assert.True(t, guard.Begin("p1:careteam", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	assert.True(t, guard.Begin("p1:careteam", time.Minute))
}
