package queue

import (
	"sync"
	"testing"
	"time"
)

func TestEnqueueDequeueFIFO(t *testing.T) {
	q := New[int](4)
	for i := 0; i < 4; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue(%d) failed", i)
		}
	}
	for i := 0; i < 4; i++ {
		v, ok := q.Dequeue()
		if !ok || v != i {
			t.Errorf("Dequeue() = %d,%v want %d,true", v, ok, i)
		}
	}
}

func TestMarkEndDrainsThenReportsEnded(t *testing.T) {
	q := New[int](4)
	q.Enqueue(1)
	q.Enqueue(2)
	q.MarkEnd()

	v, ok := q.Dequeue()
	if !ok || v != 1 {
		t.Fatalf("first dequeue = %d,%v", v, ok)
	}
	v, ok = q.Dequeue()
	if !ok || v != 2 {
		t.Fatalf("second dequeue = %d,%v", v, ok)
	}
	_, ok = q.Dequeue()
	if ok {
		t.Error("expected end_reached after drain")
	}
}

func TestEnqueueAfterMarkEndFails(t *testing.T) {
	q := New[int](4)
	q.MarkEnd()
	if q.Enqueue(1) {
		t.Error("expected Enqueue to fail after MarkEnd")
	}
}

func TestBlockingEnqueueWakesOnDequeue(t *testing.T) {
	q := New[int](1)
	q.Enqueue(1)

	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan bool, 1)
	go func() {
		defer wg.Done()
		done <- q.Enqueue(2)
	}()

	time.Sleep(20 * time.Millisecond)
	v, ok := q.Dequeue()
	if !ok || v != 1 {
		t.Fatalf("Dequeue = %d,%v", v, ok)
	}

	wg.Wait()
	if !<-done {
		t.Error("expected blocked Enqueue to succeed once space freed")
	}
}

func TestStopUnblocksWaiters(t *testing.T) {
	q := New[int](1)
	q.Enqueue(1)

	done := make(chan bool, 1)
	go func() {
		done <- q.Enqueue(2)
	}()

	time.Sleep(20 * time.Millisecond)
	q.Stop()

	if <-done {
		t.Error("expected blocked Enqueue to fail after Stop")
	}
}

func TestForceEnqueueRangeOverflow(t *testing.T) {
	q := New[int](2)
	overflow := q.ForceEnqueueRange([]int{1, 2, 3})
	if len(overflow) != 1 || overflow[0] != 3 {
		t.Errorf("overflow = %v, want [3]", overflow)
	}
}

func TestForceDequeueAll(t *testing.T) {
	q := New[int](4)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	dst := q.ForceDequeueAll(nil)
	if len(dst) != 3 {
		t.Fatalf("got %v", dst)
	}
}

func TestStatsWaitRatio(t *testing.T) {
	q := New[int](4)
	q.Enqueue(1)
	q.Dequeue()
	s := q.Stats()
	if s.EnqueueWaitRate != 0 || s.DequeueWaitRate != 0 {
		t.Errorf("expected zero wait ratio on uncontended queue, got %+v", s)
	}
}
