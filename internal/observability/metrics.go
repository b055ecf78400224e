package observability

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu           sync.Mutex
	started      time.Time
	requestCount map[string]int64
	errorCount   map[string]int64
	latencyTotal map[string]time.Duration
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		started:      time.Now(),
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		latencyTotal: make(map[string]time.Duration),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.latencyTotal[key] += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}

// Counter is one row of a metrics snapshot.
type Counter struct {
	Route     string  `json:"route"`
	Method    string  `json:"method"`
	Label     string  `json:"label"`
	Count     int64   `json:"count"`
	AvgMillis float64 `json:"avg_ms,omitempty"`
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	UptimeSeconds int64     `json:"uptime_seconds"`
	Requests      []Counter `json:"requests"`
	Errors        []Counter `json:"errors"`
}

// Snapshot copies the counters in a stable order.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		UptimeSeconds: int64(time.Since(m.started).Seconds()),
		Requests:      make([]Counter, 0, len(m.requestCount)),
		Errors:        make([]Counter, 0, len(m.errorCount)),
	}
	for key, count := range m.requestCount {
		c := splitKey(key, count)
		c.AvgMillis = float64(m.latencyTotal[key].Microseconds()) / 1000 / float64(count)
		snap.Requests = append(snap.Requests, c)
	}
	for key, count := range m.errorCount {
		snap.Errors = append(snap.Errors, splitKey(key, count))
	}
	sortCounters(snap.Requests)
	sortCounters(snap.Errors)
	return snap
}

func splitKey(key string, count int64) Counter {
	parts := strings.SplitN(key, "|", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return Counter{Route: parts[0], Method: parts[1], Label: parts[2], Count: count}
}

func sortCounters(cs []Counter) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Route != cs[j].Route {
			return cs[i].Route < cs[j].Route
		}
		if cs[i].Method != cs[j].Method {
			return cs[i].Method < cs[j].Method
		}
		return cs[i].Label < cs[j].Label
	})
}
