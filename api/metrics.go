package api

import (
	"sort"
	"sync"
	"time"
)

// RequestTrace tracks timing for a single request
type RequestTrace struct {
	RequestID     string        `json:"requestId"`
	Method        string        `json:"method"`
	Path          string        `json:"path"`
	Status        int           `json:"status"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	TotalDuration time.Duration `json:"totalDuration"`
	Error         string        `json:"error,omitempty"`
}

// RouteMetrics aggregates metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsSummary is the roll-up served by the metrics endpoint
type MetricsSummary struct {
	TotalRequests int64           `json:"totalRequests"`
	TotalErrors   int64           `json:"totalErrors"`
	WindowStart   time.Time       `json:"windowStart"`
	Routes        []*RouteMetrics `json:"routes"`
}

// MetricsCollector collects and aggregates request metrics.
// Collection is designed to never block production requests: traces
// are queued on a buffered channel and dropped silently when it fills.
type MetricsCollector struct {
	mu            sync.RWMutex
	routeMetrics  map[string]*RouteMetrics
	windowStart   time.Time
	totalRequests int64
	totalErrors   int64
	traceChan     chan RequestTrace
	stopChan      chan struct{}
}

var globalMetrics *MetricsCollector

// InitMetrics initializes the global metrics collector
func InitMetrics() {
	globalMetrics = &MetricsCollector{
		routeMetrics: make(map[string]*RouteMetrics),
		windowStart:  time.Now(),
		traceChan:    make(chan RequestTrace, 1000),
		stopChan:     make(chan struct{}),
	}
	go globalMetrics.processTraces()
}

// GetMetrics returns the global metrics collector, initializing it on
// first use
func GetMetrics() *MetricsCollector {
	if globalMetrics == nil {
		InitMetrics()
	}
	return globalMetrics
}

// RecordTrace queues a trace for aggregation without blocking
func (m *MetricsCollector) RecordTrace(trace RequestTrace) {
	select {
	case m.traceChan <- trace:
	default:
		// channel full, drop the trace
	}
}

// Stop shuts down the background aggregation goroutine
func (m *MetricsCollector) Stop() {
	close(m.stopChan)
}

func (m *MetricsCollector) processTraces() {
	for {
		select {
		case trace := <-m.traceChan:
			m.aggregate(trace)
		case <-m.stopChan:
			return
		}
	}
}

func (m *MetricsCollector) aggregate(trace RequestTrace) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRequests++
	if trace.Status >= 400 {
		m.totalErrors++
	}

	key := trace.Method + " " + trace.Path
	rm, ok := m.routeMetrics[key]
	if !ok {
		rm = &RouteMetrics{
			Method:  trace.Method,
			Path:    trace.Path,
			MinTime: trace.TotalDuration,
		}
		m.routeMetrics[key] = rm
	}

	rm.Count++
	if trace.Status >= 400 {
		rm.ErrorCount++
	}
	rm.TotalTime += trace.TotalDuration
	rm.AvgTime = rm.TotalTime / time.Duration(rm.Count)
	if trace.TotalDuration < rm.MinTime {
		rm.MinTime = trace.TotalDuration
	}
	if trace.TotalDuration > rm.MaxTime {
		rm.MaxTime = trace.TotalDuration
	}
	rm.LastRequest = trace.EndTime
}

// Summary returns a snapshot of the aggregated metrics, busiest routes
// first
func (m *MetricsCollector) Summary() MetricsSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	routes := make([]*RouteMetrics, 0, len(m.routeMetrics))
	for _, rm := range m.routeMetrics {
		copied := *rm
		routes = append(routes, &copied)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Count > routes[j].Count })

	return MetricsSummary{
		TotalRequests: m.totalRequests,
		TotalErrors:   m.totalErrors,
		WindowStart:   m.windowStart,
		Routes:        routes,
	}
}
