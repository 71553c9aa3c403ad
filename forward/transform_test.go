// SPDX-License-Identifier: GPL-3.0-or-later
package forward

import (
	"testing"

	"github.com/davrk/go-pop3-forward/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOutbound(t *testing.T) {
	in := &domain.InboundMessage{
		Index:   1,
		From:    "someone@external.org",
		To:      []string{"\"User Mailbox\" <user@domain.com>"},
		Subject: "Invoice per mail",
		Body:    []byte("body bytes"),

		ContentType:             "text/plain; charset=utf-8",
		ContentTransferEncoding: "quoted-printable",
		MimeVersion:             "1.0",
	}

	out, err := BuildOutbound(in, "inbox@target.com", "Relay", "")
	require.Nil(t, err)

	assert.Equal(t, domain.Address{Name: "Relay", Address: "user@domain.com"}, out.From)
	assert.Equal(t, "inbox@target.com", out.To)
	assert.Equal(t, "Invoice per mail", out.Subject)
	assert.Equal(t, []byte("body bytes"), out.Body)
	assert.Equal(t, "text/plain; charset=utf-8", out.ContentType)
	assert.Equal(t, "quoted-printable", out.ContentTransferEncoding)
	assert.Equal(t, "1.0", out.MimeVersion)
}

func TestBuildOutboundSubjectPrefix(t *testing.T) {
	in := &domain.InboundMessage{To: []string{"user@domain.com"}, Subject: "hello"}

	out, err := BuildOutbound(in, "inbox@target.com", "", "Fwd: ")
	require.Nil(t, err)

	assert.Equal(t, "Fwd: hello", out.Subject)
}

func TestBuildOutboundAddressErrors(t *testing.T) {
	tests := []struct {
		name          string
		to            []string
		forwardTo     string
		expectedField string
	}{
		{"norecipient", nil, "inbox@target.com", "recipient"},
		{"unparseablerecipient", []string{"not an address"}, "inbox@target.com", "recipient"},
		{"unparseabledestination", []string{"user@domain.com"}, "not an address", "forwardto"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := &domain.InboundMessage{To: tc.to, Subject: "hello"}

			out, err := BuildOutbound(in, tc.forwardTo, "", "")
			assert.Nil(t, out)

			var addressErr *domain.AddressError
			require.ErrorAs(t, err, &addressErr)
			assert.Equal(t, tc.expectedField, addressErr.Field)
		})
	}
}
