// SPDX-License-Identifier: GPL-3.0-or-later
package scheduler

import (
	"context"
	"time"

	"github.com/davrk/go-pop3-forward/log"

	"github.com/sirupsen/logrus"
)

// Cycler is one unit of scheduled work, typically a full mailbox drain.
type Cycler interface {
	Run() error
}

// Scheduler runs cycles back to back, waiting a fixed interval between
// them. Consecutive failures double the wait up to maxBackoff so an
// unreachable server is not hammered every interval.
type Scheduler struct {
	cycler     Cycler
	interval   time.Duration
	maxBackoff time.Duration

	l *logrus.Logger
}

func NewScheduler(cycler Cycler, interval, maxBackoff time.Duration) *Scheduler {
	if maxBackoff < interval {
		maxBackoff = interval
	}

	return &Scheduler{
		cycler:     cycler,
		interval:   interval,
		maxBackoff: maxBackoff,
		l:          log.Logger(log.LOG_SCHEDULER),
	}
}

// Run cycles until ctx is cancelled. Cancellation is only observed
// between cycles, a running cycle always completes.
func (s *Scheduler) Run(ctx context.Context) {
	consecutiveFailures := 0

	for {
		if err := s.cycler.Run(); err != nil {
			consecutiveFailures++
			s.l.WithFields(logrus.Fields{"error": err, "consecutivefailures": consecutiveFailures}).Error("Cycle failed")
		} else {
			consecutiveFailures = 0
		}

		delay := s.delay(consecutiveFailures)
		s.l.WithField("delay", delay).Debug("Waiting for next cycle")

		select {
		case <-ctx.Done():
			s.l.Info("Scheduler stopped")
			return
		case <-time.After(delay):
		}
	}
}

func (s *Scheduler) delay(consecutiveFailures int) time.Duration {
	delay := s.interval
	for i := 0; i < consecutiveFailures; i++ {
		delay *= 2
		if delay >= s.maxBackoff {
			return s.maxBackoff
		}
	}

	return delay
}
