// SPDX-License-Identifier: GPL-3.0-or-later
package forward

import (
	"fmt"

	"github.com/davrk/go-pop3-forward/domain"
)

type ConfigFunc func(c *configuration) error

// DeleteSpam deletes messages that score at or above the spam threshold
// instead of leaving them untouched in the mailbox.
func DeleteSpam() ConfigFunc {
	return func(c *configuration) error {
		c.DeleteSpam = true

		return nil
	}
}

// SpamThreshold overrides the score at which a message counts as spam.
func SpamThreshold(threshold float64) ConfigFunc {
	return func(c *configuration) error {
		if threshold <= 0 {
			return fmt.Errorf("SpamThreshold must be greater than zero")
		}

		c.SpamThreshold = threshold
		return nil
	}
}

// SubjectPrefix prepends a forwarding marker to outbound subjects.
func SubjectPrefix(prefix string) ConfigFunc {
	return func(c *configuration) error {
		c.SubjectPrefix = prefix

		return nil
	}
}

// Journal enables duplicate-forward suppression backed by the given journal.
func Journal(journal domain.Journal) ConfigFunc {
	return func(c *configuration) error {
		if journal == nil {
			return fmt.Errorf("Journal cannot be nil")
		}

		c.Journal = journal
		return nil
	}
}

type configuration struct {
	DeleteSpam    bool
	SpamThreshold float64
	SubjectPrefix string

	Journal domain.Journal
}
