// SPDX-License-Identifier: GPL-3.0-or-later
package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davrk/go-pop3-forward/log"

	"github.com/stretchr/testify/assert"
)

type fakeCycler struct {
	errs []error
	runs int
}

func (f *fakeCycler) Run() error {
	f.runs++
	if f.runs <= len(f.errs) {
		return f.errs[f.runs-1]
	}
	return nil
}

func TestDelay(t *testing.T) {
	log.InitLogging("error")
	s := NewScheduler(nil, 60*time.Second, 960*time.Second)

	tests := []struct {
		name                string
		consecutiveFailures int
		expected            time.Duration
	}{
		{"nofailures", 0, 60 * time.Second},
		{"onefailure", 1, 120 * time.Second},
		{"twofailures", 2, 240 * time.Second},
		{"threefailures", 3, 480 * time.Second},
		{"capped", 4, 960 * time.Second},
		{"staysatcap", 10, 960 * time.Second},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.delay(tc.consecutiveFailures))
		})
	}
}

func TestDelayRecoversAfterSuccess(t *testing.T) {
	log.InitLogging("error")
	failOnce := &fakeCycler{errs: []error{errors.New("transient")}}
	s := NewScheduler(failOnce, time.Millisecond, 8*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Enough time for several cycles despite the one failed first run.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.GreaterOrEqual(t, failOnce.runs, 3)
}

func TestMaxBackoffBelowIntervalIsRaised(t *testing.T) {
	log.InitLogging("error")
	s := NewScheduler(nil, 60*time.Second, time.Second)

	assert.Equal(t, 60*time.Second, s.delay(0))
	assert.Equal(t, 60*time.Second, s.delay(5))
}

func TestRunStopsOnCancel(t *testing.T) {
	log.InitLogging("error")
	cycler := &fakeCycler{}
	s := NewScheduler(cycler, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancellation")
	}

	// The cycle that was already due still ran before the stop.
	assert.Equal(t, 1, cycler.runs)
}
