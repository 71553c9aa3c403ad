// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/spamclassifier.go -package=mocks . SpamClassifier

// SpamVerdict is the outcome of scoring one message. Ok is false when the
// classifier could not produce a score; the zero value is the fail-open
// verdict, classifier unavailability never blocks forwarding.
type SpamVerdict struct {
	Score float64
	Ok    bool
}

// SpamClassifier scores a raw message. Implementations never return an
// error, every failure is converted into the fail-open verdict.
type SpamClassifier interface {
	Check(rawMail []byte) *SpamVerdict
}
