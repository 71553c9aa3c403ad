// SPDX-License-Identifier: GPL-3.0-or-later
package forward

import (
	"errors"
	stdmail "net/mail"

	"github.com/davrk/go-pop3-forward/domain"
)

// BuildOutbound derives the re-addressed copy of an inbound message. The
// outbound sender is the address the original mail was delivered to,
// combined with the configured display name, so the destination mailbox
// keeps the "received on behalf of" context. The original external sender
// is deliberately not preserved.
func BuildOutbound(in *domain.InboundMessage, forwardTo, senderName, subjectPrefix string) (*domain.OutboundMessage, error) {
	if len(in.To) == 0 {
		return nil, &domain.AddressError{Field: "recipient", Err: errors.New("message has no recipient")}
	}

	recipient, err := stdmail.ParseAddress(in.To[0])
	if err != nil {
		return nil, &domain.AddressError{Field: "recipient", Value: in.To[0], Err: err}
	}

	destination, err := stdmail.ParseAddress(forwardTo)
	if err != nil {
		return nil, &domain.AddressError{Field: "forwardto", Value: forwardTo, Err: err}
	}

	return &domain.OutboundMessage{
		From: domain.Address{
			Name:    senderName,
			Address: recipient.Address,
		},
		To:      destination.Address,
		Subject: subjectPrefix + in.Subject,
		Body:    in.Body,

		ContentType:             in.ContentType,
		ContentTransferEncoding: in.ContentTransferEncoding,
		MimeVersion:             in.MimeVersion,
	}, nil
}
