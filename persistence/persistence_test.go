// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"path"
	"testing"

	"github.com/davrk/go-pop3-forward/log"

	"github.com/stretchr/testify/assert"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	log.InitLogging("error")

	journal, err := NewJournal(path.Join(t.TempDir(), "journal.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })

	return journal
}

func TestJournalRoundtrip(t *testing.T) {
	journal := newTestJournal(t)

	forwarded, err := journal.WasForwarded("abc")
	assert.NoError(t, err)
	assert.False(t, forwarded)

	assert.NoError(t, journal.MarkForwarded("abc", "some subject"))

	forwarded, err = journal.WasForwarded("abc")
	assert.NoError(t, err)
	assert.True(t, forwarded)

	forwarded, err = journal.WasForwarded("other")
	assert.NoError(t, err)
	assert.False(t, forwarded)
}

func TestJournalMarkTwice(t *testing.T) {
	journal := newTestJournal(t)

	assert.NoError(t, journal.MarkForwarded("abc", "subject"))
	assert.NoError(t, journal.MarkForwarded("abc", "subject"))

	forwarded, err := journal.WasForwarded("abc")
	assert.NoError(t, err)
	assert.True(t, forwarded)
}

func TestJournalEmptyHash(t *testing.T) {
	journal := newTestJournal(t)

	// messages without id headers are never journaled
	assert.NoError(t, journal.MarkForwarded("", "subject"))

	forwarded, err := journal.WasForwarded("")
	assert.NoError(t, err)
	assert.False(t, forwarded)
}
