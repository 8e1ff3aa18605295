package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Counter only goes up. The zero value is ready to use.
type Counter struct {
	n atomic.Uint64
}

func (c *Counter) Inc() { c.n.Add(1) }

func (c *Counter) Add(n uint64) { c.n.Add(n) }

func (c *Counter) Load() uint64 { return c.n.Load() }

// CounterVec is a family of counters keyed by one label, e.g. a status class.
type CounterVec struct {
	mu       sync.RWMutex
	counters map[string]*Counter
}

func NewCounterVec() *CounterVec {
	return &CounterVec{counters: make(map[string]*Counter)}
}

// With returns the counter for label, creating it on first use.
func (v *CounterVec) With(label string) *Counter {
	v.mu.RLock()
	c, ok := v.counters[label]
	v.mu.RUnlock()
	if ok {
		return c
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if c, ok = v.counters[label]; !ok {
		c = &Counter{}
		v.counters[label] = c
	}
	return c
}

// Snapshot copies the current values, labels in sorted order.
func (v *CounterVec) Snapshot() []Sample {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]Sample, 0, len(v.counters))
	for label, c := range v.counters {
		out = append(out, Sample{Label: label, Value: c.Load()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

type Sample struct {
	Label string
	Value uint64
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
