package scheduler

import (
	"testing"

	"servicelog-backend/internal/config"
	"servicelog-backend/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler(t *testing.T) {
	t.Run("RegistersSweep", func(t *testing.T) {
		cfg := &config.Config{Scheduler: config.SchedulerConfig{SweepOrphanedDocuments: "0 0 3 * * *"}}
		s, err := NewScheduler(jobs.NewJobRunner(nil, nil, cfg, nil))
		require.NoError(t, err)
		assert.True(t, s.IsRunning())

		s.Start()
		defer s.Stop()
		next := s.NextRun()
		assert.False(t, next.IsZero())
		assert.Equal(t, 3, next.UTC().Hour())
	})

	t.Run("InvalidSchedule", func(t *testing.T) {
		cfg := &config.Config{Scheduler: config.SchedulerConfig{SweepOrphanedDocuments: "every night"}}
		_, err := NewScheduler(jobs.NewJobRunner(nil, nil, cfg, nil))
		assert.Error(t, err)
	})
}
