// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// Address is a display name plus a bare mail address.
type Address struct {
	Name    string
	Address string
}

// InboundMessage is one mail fetched from the source mailbox. Index is the
// 1-based POP3 sequence number and is only valid within the session the
// message was fetched in. IdHash is a stable content-derived identity and
// may be empty when the message carries neither Message-Id nor Received
// headers.
type InboundMessage struct {
	Index   int
	From    string
	To      []string
	Subject string

	Raw  []byte
	Body []byte
	Size int

	ContentType             string
	ContentTransferEncoding string
	MimeVersion             string

	IdHash string
}

// OutboundMessage is the re-addressed copy that gets transmitted to the
// forward destination. Body is carried verbatim from the inbound message,
// together with the content headers that describe it.
type OutboundMessage struct {
	From    Address
	To      string
	Subject string
	Body    []byte

	ContentType             string
	ContentTransferEncoding string
	MimeVersion             string
}
