// SPDX-License-Identifier: GPL-3.0-or-later
package forward

import (
	"fmt"
	stdmail "net/mail"

	"github.com/davrk/go-pop3-forward/domain"
	"github.com/davrk/go-pop3-forward/log"
	"github.com/davrk/go-pop3-forward/mail"

	"github.com/sirupsen/logrus"
)

const DefaultSpamThreshold = 4.0

// Forwarder drains the source mailbox once per Run: fetch every pending
// message, score it when a classifier is configured, transmit accepted
// messages to the forward destination and mark handled ones for deletion.
// Deletions only take effect when the session commits at the end of the
// cycle, so a crash mid-cycle leaves the mailbox untouched.
type Forwarder struct {
	dialer     domain.MailboxDialer
	sender     domain.MailSender
	classifier domain.SpamClassifier

	forwardTo  string
	senderName string

	configuration *configuration

	l *logrus.Logger
}

// NewForwarder builds a forwarder. classifier may be nil, which disables
// spam checking entirely.
func NewForwarder(dialer domain.MailboxDialer, sender domain.MailSender, classifier domain.SpamClassifier, forwardTo, senderName string, configFunc ...ConfigFunc) (*Forwarder, error) {
	config := &configuration{
		SpamThreshold: DefaultSpamThreshold,
	}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	if _, err := stdmail.ParseAddress(forwardTo); err != nil {
		return nil, fmt.Errorf("forward destination is not a valid mail address: %w", err)
	}

	return &Forwarder{
		dialer:        dialer,
		sender:        sender,
		classifier:    classifier,
		forwardTo:     forwardTo,
		senderName:    senderName,
		configuration: config,
		l:             log.Logger(log.LOG_FORWARD),
	}, nil
}

// Run executes one drain cycle. Connection and fetch failures are
// cycle-scoped and surface as the returned error; everything that goes
// wrong with a single message only keeps that message for the next cycle.
func (fw *Forwarder) Run() error {
	session, err := fw.dialer.Dial()
	if err != nil {
		return fmt.Errorf("could not connect to mailbox: %w", err)
	}

	count := session.Count()
	fw.l.WithField("messages", count).Info("Mailbox enumerated")

	var fetchErr error
	for i := 1; i <= count; i++ {
		msg, err := session.Fetch(i)
		if err != nil {
			// A failed RETR means the session can no longer be trusted;
			// unfetched messages stay put and are retried next cycle.
			fw.l.WithFields(logrus.Fields{"index": i, "error": err}).Error("Fetch failed, aborting enumeration")
			fetchErr = fmt.Errorf("could not fetch message %d: %w", i, err)
			break
		}

		if err := fw.handleMessage(session, msg); err != nil {
			fw.l.WithFields(logrus.Fields{"index": i, "subject": mail.ShortSubject(msg.Subject), "error": err}).Error("Message kept for next cycle")
		}
	}

	// Commit happens even after a fetch failure so deletions decided for
	// earlier indices are not lost.
	if err := session.Quit(); err != nil {
		fw.l.WithField("error", err).Error("Could not commit deletions cleanly")
	}

	return fetchErr
}

func (fw *Forwarder) handleMessage(session domain.MailboxSession, msg *domain.InboundMessage) error {
	baseLogger := fw.l.WithFields(logrus.Fields{"index": msg.Index, "from": msg.From, "subject": mail.ShortSubject(msg.Subject)})

	if fw.classifier != nil {
		verdict := fw.classifier.Check(msg.Raw)
		if verdict.Score >= fw.configuration.SpamThreshold {
			if fw.configuration.DeleteSpam {
				baseLogger.WithField("score", verdict.Score).Info("Deleting spam")
				if err := session.Delete(msg.Index); err != nil {
					return fmt.Errorf("could not delete spam message: %w", err)
				}
				return nil
			}

			baseLogger.WithField("score", verdict.Score).Info("Leaving spam in mailbox")
			return nil
		}
	}

	if fw.configuration.Journal != nil && msg.IdHash != "" {
		forwarded, err := fw.configuration.Journal.WasForwarded(msg.IdHash)
		if err != nil {
			fw.l.WithField("error", err).Warn("Journal lookup failed")
		} else if forwarded {
			// Transmitted in an earlier cycle whose commit never happened.
			baseLogger.Info("Already forwarded, deleting without retransmitting")
			if err := session.Delete(msg.Index); err != nil {
				return fmt.Errorf("could not delete previously forwarded message: %w", err)
			}
			return nil
		}
	}

	out, err := BuildOutbound(msg, fw.forwardTo, fw.senderName, fw.configuration.SubjectPrefix)
	if err != nil {
		return fmt.Errorf("could not build outbound message: %w", err)
	}

	if err := fw.sender.Send(out); err != nil {
		return fmt.Errorf("could not forward message: %w", err)
	}
	baseLogger.WithField("to", out.To).Info("Forwarded message")

	if fw.configuration.Journal != nil && msg.IdHash != "" {
		if err := fw.configuration.Journal.MarkForwarded(msg.IdHash, msg.Subject); err != nil {
			fw.l.WithField("error", err).Warn("Could not record forwarded message in journal")
		}
	}

	if err := session.Delete(msg.Index); err != nil {
		return fmt.Errorf("could not delete forwarded message: %w", err)
	}

	return nil
}
