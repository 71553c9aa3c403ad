// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/journal.go -package=mocks . Journal

// Journal remembers which messages were already transmitted to the forward
// destination, keyed by the stable IdHash. It suppresses duplicate forwards
// when a previous cycle crashed between transmission and commit. It is
// never consulted for spam decisions.
type Journal interface {
	WasForwarded(mailIdHash string) (bool, error)
	MarkForwarded(mailIdHash, subject string) error
	Close() error
}
