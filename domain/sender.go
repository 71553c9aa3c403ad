// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/sender.go -package=mocks . MailSender

// MailSender transmits one outbound message. Implementations open and close
// their connection per call, a failed send must not leak the session.
type MailSender interface {
	Send(out *OutboundMessage) error
}
