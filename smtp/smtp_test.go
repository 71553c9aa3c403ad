// SPDX-License-Identifier: GPL-3.0-or-later
package smtp

import (
	"bytes"
	stdmail "net/mail"
	"testing"

	"github.com/davrk/go-pop3-forward/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	out := &domain.OutboundMessage{
		From:                    domain.Address{Name: "Relay", Address: "user@domain.com"},
		To:                      "dest@example.org",
		Subject:                 "Fwd: Hello",
		Body:                    []byte("original body\r\nsecond line\r\n"),
		ContentType:             "text/plain; charset=utf-8",
		ContentTransferEncoding: "quoted-printable",
		MimeVersion:             "1.0",
	}

	raw, err := buildMessage(out)
	assert.NoError(t, err)

	msg, err := stdmail.ReadMessage(bytes.NewReader(raw))
	assert.NoError(t, err)

	from, err := stdmail.ParseAddress(msg.Header.Get("From"))
	assert.NoError(t, err)
	assert.Equal(t, "Relay", from.Name)
	assert.Equal(t, "user@domain.com", from.Address)

	to, err := stdmail.ParseAddress(msg.Header.Get("To"))
	assert.NoError(t, err)
	assert.Equal(t, "dest@example.org", to.Address)
	assert.Equal(t, "Fwd: Hello", msg.Header.Get("Subject"))
	assert.Equal(t, "text/plain; charset=utf-8", msg.Header.Get("Content-Type"))
	assert.Equal(t, "quoted-printable", msg.Header.Get("Content-Transfer-Encoding"))
	assert.NotEmpty(t, msg.Header.Get("Message-Id"))
	assert.NotEmpty(t, msg.Header.Get("Date"))

	// body is carried verbatim
	assert.True(t, bytes.HasSuffix(raw, []byte("original body\r\nsecond line\r\n")))
}

func TestBuildMessageWithoutContentHeaders(t *testing.T) {
	out := &domain.OutboundMessage{
		From:    domain.Address{Address: "user@domain.com"},
		To:      "dest@example.org",
		Subject: "Hello",
		Body:    []byte("body"),
	}

	raw, err := buildMessage(out)
	assert.NoError(t, err)

	msg, err := stdmail.ReadMessage(bytes.NewReader(raw))
	assert.NoError(t, err)
	assert.Empty(t, msg.Header.Get("Content-Type"))
}

func TestGenerateMessageId(t *testing.T) {
	id := generateMessageId("user@domain.com")
	assert.Contains(t, id, "@domain.com>")
	assert.NotEqual(t, id, generateMessageId("user@domain.com"))

	assert.Contains(t, generateMessageId("noatsign"), "@localhost>")
}
