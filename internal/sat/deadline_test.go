package sat

import (
	"testing"
	"time"
)

func TestDeadline_Exceeded(t *testing.T) {
	d := NewDeadline(10 * time.Millisecond)
	if d.Exceeded() {
		t.Errorf("Exceeded() = true immediately after NewDeadline, want false")
	}
	time.Sleep(20 * time.Millisecond)
	if !d.Exceeded() {
		t.Errorf("Exceeded() = false after the budget elapsed, want true")
	}
}
