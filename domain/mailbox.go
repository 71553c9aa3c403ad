// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/mailbox.go -package=mocks . MailboxDialer,MailboxSession

// MailboxDialer opens a fresh connected and authenticated session on the
// source mailbox. One session lives for exactly one drain cycle.
type MailboxDialer interface {
	Dial() (MailboxSession, error)
}

// MailboxSession is a live POP3 session. Delete only marks a message;
// nothing is removed on the server until Quit commits the session.
type MailboxSession interface {
	Count() int
	Fetch(index int) (*InboundMessage, error)
	Delete(index int) error
	Quit() error
}
