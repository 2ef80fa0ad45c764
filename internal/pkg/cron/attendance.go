package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// FallbackCounter reports how many timestamps resolved to the current time.
type FallbackCounter interface {
	Fallbacks() int64
}

type AttendanceJobs struct {
	counter  FallbackCounter
	interval time.Duration

	mu       sync.Mutex
	reported int64
}

func NewAttendanceJobs(counter FallbackCounter, interval time.Duration) *AttendanceJobs {
	if interval <= 0 {
		interval = time.Hour
	}
	return &AttendanceJobs{
		counter:  counter,
		interval: interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:     "report_timestamp_fallbacks",
		Interval: j.interval,
		Fn:       j.ReportTimestampFallbacks,
	})
}

// ReportTimestampFallbacks logs how many timestamps fell back since the last run.
func (j *AttendanceJobs) ReportTimestampFallbacks(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	total := j.counter.Fallbacks()
	delta := total - j.reported
	j.reported = total

	if delta > 0 {
		slog.Warn("Cron: attendance timestamps fell back to current time", "since_last_report", delta, "total", total)
	}
	return nil
}

// Reported is the counter value at the last report.
func (j *AttendanceJobs) Reported() int64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.reported
}
