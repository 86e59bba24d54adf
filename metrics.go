package qsim

import (
	"sync"
	"time"
)

// Metrics tracks pool activity for a single sampling run.
type Metrics struct {
	mu                 sync.RWMutex
	WorkerCount        int
	JobQueueSize       int
	ActiveWorkers      int
	JobCount           int64
	FailedJobs         int64
	SchedulingFailures int64
	SchedulingDelays   int64
	TotalJobTime       time.Duration
	AverageJobLatency  time.Duration
	MaxJobLatency      time.Duration
	JobSuccessRate     float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordJobExecution(startTime time.Time, success bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalJobTime += duration
	m.JobCount++
	if !success {
		m.FailedJobs++
	}

	m.JobSuccessRate = float64(m.JobCount-m.FailedJobs) / float64(m.JobCount)
	m.AverageJobLatency = m.TotalJobTime / time.Duration(m.JobCount)
	if duration > m.MaxJobLatency {
		m.MaxJobLatency = duration
	}
}

func (m *Metrics) recordSchedulingDelay() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SchedulingDelays++
}

func (m *Metrics) recordSchedulingFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SchedulingFailures++
}

// ExportMetrics returns a snapshot suitable for logging.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"worker_count":        m.WorkerCount,
		"queue_size":          m.JobQueueSize,
		"jobs":                m.JobCount,
		"failed_jobs":         m.FailedJobs,
		"scheduling_failures": m.SchedulingFailures,
		"scheduling_delays":   m.SchedulingDelays,
		"success_rate":        m.JobSuccessRate,
		"avg_latency_us":      m.AverageJobLatency.Microseconds(),
		"max_latency_us":      m.MaxJobLatency.Microseconds(),
	}
}
