// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"mime"
	stdmail "net/mail"

	"github.com/emersion/go-message/charset"
)

// MessageIdHash derives a stable identity for a mail from its Message-Id
// and Received headers. POP3 sequence numbers are session-scoped, so this
// hash is what survives across cycles. Returns an empty hash (no error)
// when the message carries neither header.
func MessageIdHash(rawMail []byte) (string, error) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawMail))
	if err != nil {
		return "", fmt.Errorf("could not parse mail: %w", err)
	}

	messageIdHeader := msg.Header["Message-Id"]
	receivedHeader := msg.Header["Received"]
	if len(receivedHeader) == 0 && len(messageIdHeader) == 0 {
		return "", nil
	}

	return hash([][]string{messageIdHeader, receivedHeader})
}

// DecodeSubject decodes MIME encoded-words in a subject header, falling
// back to the raw value when decoding fails.
func DecodeSubject(subjectHeader string) string {
	dec := &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}
	subject, err := dec.DecodeHeader(subjectHeader)
	if err != nil {
		return subjectHeader
	}
	return subject
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}

func hash(input [][]string) (string, error) {
	sha := sha256.New()
	for _, i := range input {
		for _, ii := range i {
			_, err := sha.Write([]byte(ii))
			if err != nil {
				return "", fmt.Errorf("could not hash: %w", err)
			}
		}
	}

	return fmt.Sprintf("%x", sha.Sum(nil)), nil
}
