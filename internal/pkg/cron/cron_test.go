package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct{ n atomic.Int64 }

func (f *fakeCounter) Fallbacks() int64 { return f.n.Load() }

func TestReportTimestampFallbacks_TracksDelta(t *testing.T) {
	counter := &fakeCounter{}
	jobs := NewAttendanceJobs(counter, 0)

	require.NoError(t, jobs.ReportTimestampFallbacks(context.Background()))
	assert.Equal(t, int64(0), jobs.Reported())

	counter.n.Add(3)
	require.NoError(t, jobs.ReportTimestampFallbacks(context.Background()))
	assert.Equal(t, int64(3), jobs.Reported())

	require.NoError(t, jobs.ReportTimestampFallbacks(context.Background()))
	assert.Equal(t, int64(3), jobs.Reported())
}

func TestScheduler_RunsAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob(Job{
		Name:       "tick",
		Interval:   5 * time.Millisecond,
		RunOnStart: true,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var order []string
	for _, name := range []string{"a", "b"} {
		name := name
		s.AddJob(Job{Name: name, Interval: time.Hour, Fn: func(ctx context.Context) error {
			order = append(order, name)
			return nil
		}})
	}

	s.RunOnce(context.Background())
	assert.Equal(t, []string{"a", "b"}, order)
}
