package core

import (
	"testing"
	"time"
)

func TestIntervalDue(t *testing.T) {
	iv := NewInterval(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	if iv.Due(t0) {
		t.Fatal("first call only arms the timer")
	}
	if iv.Due(t0.Add(99 * time.Millisecond)) {
		t.Fatal("fired before the delay elapsed")
	}
	if !iv.Due(t0.Add(100 * time.Millisecond)) {
		t.Fatal("did not fire once the delay elapsed")
	}
	if iv.Due(t0.Add(150 * time.Millisecond)) {
		t.Fatal("wait must restart after firing")
	}
	if !iv.Due(t0.Add(450 * time.Millisecond)) {
		t.Fatal("did not fire after a long pause")
	}
	if iv.Due(t0.Add(460 * time.Millisecond)) {
		t.Fatal("missed steps must not be replayed")
	}
}

func TestIntervalRestartAndDefaults(t *testing.T) {
	iv := NewInterval(0)
	if iv.Delay() != 100*time.Millisecond {
		t.Fatalf("default delay %v", iv.Delay())
	}
	t0 := time.Unix(50, 0)
	iv.Restart(t0)
	iv.SetDelay(20 * time.Millisecond)
	iv.Restart(t0.Add(15 * time.Millisecond))
	if iv.Due(t0.Add(30 * time.Millisecond)) {
		t.Fatal("restart must reset the wait")
	}
	if !iv.Due(t0.Add(35 * time.Millisecond)) {
		t.Fatal("did not fire after restarted wait")
	}
}
