package progress

import (
	"bytes"
	"testing"

	"github.com/wikigeo/geohist/internal/queue"
)

func TestCounterAddValue(t *testing.T) {
	var c Counter
	c.Add(3)
	c.Add(4)
	if c.Value() != 7 {
		t.Errorf("Value() = %d, want 7", c.Value())
	}
}

func TestReportDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	counters := &Counters{}
	counters.ItemsParsed.Add(10)

	q := queue.New[int](3)
	reporter := NewReporter(&buf, counters, map[string]QueueStatser{"q1": q}, 100)
	reporter.Report()

	if buf.Len() == 0 {
		t.Error("expected some output from Report")
	}
}

func TestReportThrottled(t *testing.T) {
	var buf bytes.Buffer
	counters := &Counters{}
	reporter := NewReporter(&buf, counters, nil, 0.001) // effectively never refills within test
	reporter.Report()
	firstLen := buf.Len()
	reporter.Report()
	if buf.Len() != firstLen {
		t.Error("expected second Report call to be throttled away")
	}
}
