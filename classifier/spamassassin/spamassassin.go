// SPDX-License-Identifier: GPL-3.0-or-later
package spamassassin

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/davrk/go-pop3-forward/domain"
	"github.com/davrk/go-pop3-forward/log"

	"github.com/sirupsen/logrus"
	"github.com/teamwork/spamc"
)

const SpamAssassinTimeout = 20 * time.Second

// SpamAssassin scores messages against a spamd instance. Like the HTTP
// scorer it fails open, an unreachable daemon yields a zero score.
type SpamAssassin struct {
	client *spamc.Client

	l *logrus.Logger
}

func NewSpamassassin(host string) (*SpamAssassin, error) {
	client := spamc.New(host, &net.Dialer{
		Timeout: SpamAssassinTimeout,
	})
	err := client.Ping(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("could not ping SpamAssassin: %w", err)
	}

	return &SpamAssassin{
		client: client,
		l:      log.Logger(log.LOG_CLASSIFIER),
	}, nil
}

func (sa *SpamAssassin) Check(rawMail []byte) *domain.SpamVerdict {
	out, err := sa.client.Check(context.TODO(), bytes.NewReader(rawMail), nil)
	if err != nil {
		sa.l.WithField("error", err).Warn("Could not check SpamAssassin, failing open")
		return &domain.SpamVerdict{Score: 0, Ok: false}
	}

	sa.l.WithField("score", out.Score).Info("Scored message")
	return &domain.SpamVerdict{Score: out.Score, Ok: true}
}
