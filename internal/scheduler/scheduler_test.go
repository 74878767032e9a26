package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	name        string
	err         error
	ran         bool
	hadDeadline bool
}

func (j *stubJob) Run(ctx context.Context) error {
	j.ran = true
	_, j.hadDeadline = ctx.Deadline()
	return j.err
}

func (j *stubJob) Name() string { return j.name }

func TestRunNowAppliesJobTimeout(t *testing.T) {
	s := New(time.Minute, zerolog.Nop())
	job := &stubJob{name: "stub"}

	require.NoError(t, s.RunNow(job))
	assert.True(t, job.ran)
	assert.True(t, job.hadDeadline)
}

func TestRunNowPropagatesJobError(t *testing.T) {
	s := New(time.Minute, zerolog.Nop())
	job := &stubJob{name: "stub", err: errors.New("snapshot failed")}

	err := s.RunNow(job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot failed")
}

func TestScheduleRejectsBadSpec(t *testing.T) {
	s := New(time.Minute, zerolog.Nop())

	err := s.Schedule("not a cron spec", &stubJob{name: "stub"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stub")
}

func TestScheduleAcceptsEverySpec(t *testing.T) {
	s := New(time.Minute, zerolog.Nop())
	require.NoError(t, s.Schedule("@every 15m", &stubJob{name: "stub"}))
}
