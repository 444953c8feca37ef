package main

import "testing"

func TestSizeTrackerFollowsWindowChanges(t *testing.T) {
	s := newSizeTracker(80, 24)
	if w, h, err := s.getSize(); err != nil || w != 80 || h != 24 {
		t.Fatalf("initial size = %dx%d (%v), want 80x24", w, h, err)
	}

	s.update(120, 40)
	if w, h, _ := s.getSize(); w != 120 || h != 40 {
		t.Fatalf("size after resize = %dx%d, want 120x40", w, h)
	}
}
