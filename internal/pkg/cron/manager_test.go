package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterJobs_InvalidSpec(t *testing.T) {
	mgr := NewCronManager(nil, "not a spec")
	assert.Error(t, mgr.RegisterJobs())
}

func TestRegisterJobs_Descriptor(t *testing.T) {
	mgr := NewCronManager(nil, "@daily")
	assert.NoError(t, mgr.RegisterJobs())

	entries := mgr.engine.Entries()
	if assert.Len(t, entries, 1) {
		next := entries[0].Schedule.Next(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), next)
	}
}

func TestStart_InvalidSpecDoesNotStart(t *testing.T) {
	mgr := NewCronManager(nil, "61 * * * *")
	assert.Error(t, mgr.Start())
	assert.Empty(t, mgr.engine.Entries())
}

func TestStartStop(t *testing.T) {
	mgr := NewCronManager(nil, "@hourly")
	assert.NoError(t, mgr.Start())
	assert.Len(t, mgr.engine.Entries(), 1)
	mgr.Stop()
}
