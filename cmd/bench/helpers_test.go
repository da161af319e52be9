package main

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestParallel(t *testing.T) {
	calls := int64(0)
	Parallel(4, func() {
		atomic.AddInt64(&calls, 1)
	})
	if calls != 4 {
		t.Fatalf("expected 4 calls, got %d", calls)
	}
}

func TestLatencies(t *testing.T) {
	l := &Latencies{}
	Parallel(3, func() {
		l.Add(2 * time.Millisecond)
	})
	if len(l.data) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(l.data))
	}
	if l.data[0] != 2 {
		t.Fatalf("expected 2ms, got %v", l.data[0])
	}
	l.Print()
}
