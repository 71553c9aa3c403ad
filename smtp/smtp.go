// SPDX-License-Identifier: GPL-3.0-or-later
package smtp

import (
	"bytes"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/davrk/go-pop3-forward/domain"
	"github.com/davrk/go-pop3-forward/log"
	"github.com/davrk/go-pop3-forward/mail"

	gomail "github.com/emersion/go-message/mail"
	"github.com/emersion/go-message/textproto"
	"github.com/emersion/go-sasl"
	gosmtp "github.com/emersion/go-smtp"
	"github.com/sirupsen/logrus"
)

// Sender transmits outbound messages. A fresh connection is opened and
// closed for every message, no session state crosses message boundaries.
type Sender struct {
	host     string
	port     int
	useSsl   bool
	username string
	password string
	timeout  time.Duration

	l *logrus.Logger
}

func NewSender(host string, port int, useSsl bool, username, password string, timeout time.Duration) *Sender {
	return &Sender{
		host:     host,
		port:     port,
		useSsl:   useSsl,
		username: username,
		password: password,
		timeout:  timeout,
		l:        log.Logger(log.LOG_SMTP),
	}
}

func (s *Sender) Send(out *domain.OutboundMessage) error {
	client, err := s.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	if s.password != "" {
		auth := sasl.NewPlainClient("", s.username, s.password)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("could not authenticate to smtp server: %w", err)
		}
		s.l.Debug("Authenticated")
	}

	msg, err := buildMessage(out)
	if err != nil {
		return fmt.Errorf("could not build message: %w", err)
	}

	if err := client.SendMail(out.From.Address, []string{out.To}, bytes.NewReader(msg)); err != nil {
		return fmt.Errorf("could not send message: %w", err)
	}

	s.l.WithFields(logrus.Fields{"to": out.To, "subject": mail.ShortSubject(out.Subject)}).Debug("Transmitted message")

	if err := client.Quit(); err != nil {
		return fmt.Errorf("could not quit smtp session: %w", err)
	}

	return nil
}

func (s *Sender) connect() (*gosmtp.Client, error) {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))

	dialer := &net.Dialer{Timeout: s.timeout}

	var conn net.Conn
	var err error
	if s.useSsl {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{
			ServerName: s.host,
		})
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to smtp server %s: %w", addr, err)
	}

	s.l.WithField("host", s.host).Debug("Connected")
	return gosmtp.NewClient(conn), nil
}

// buildMessage renders the outbound message: fresh address and subject
// headers, the inbound content headers copied over, the body verbatim.
func buildMessage(out *domain.OutboundMessage) ([]byte, error) {
	var h gomail.Header
	h.SetDate(time.Now())
	h.SetSubject(out.Subject)
	h.SetAddressList("From", []*gomail.Address{{
		Name:    out.From.Name,
		Address: out.From.Address,
	}})
	h.SetAddressList("To", []*gomail.Address{{
		Address: out.To,
	}})
	h.Set("Message-Id", generateMessageId(out.From.Address))

	if out.MimeVersion != "" {
		h.Set("Mime-Version", out.MimeVersion)
	}
	if out.ContentType != "" {
		h.Set("Content-Type", out.ContentType)
	}
	if out.ContentTransferEncoding != "" {
		h.Set("Content-Transfer-Encoding", out.ContentTransferEncoding)
	}

	var buf bytes.Buffer
	if err := textproto.WriteHeader(&buf, h.Header.Header); err != nil {
		return nil, fmt.Errorf("could not write header: %w", err)
	}
	buf.Write(out.Body)

	return buf.Bytes(), nil
}

// generateMessageId produces an RFC 5322 Message-Id using the domain of the
// sender address.
func generateMessageId(fromAddress string) string {
	domainPart := "localhost"
	if idx := strings.Index(fromAddress, "@"); idx >= 0 {
		domainPart = fromAddress[idx+1:]
	}

	b := make([]byte, 8)
	_, _ = rand.Read(b)

	return fmt.Sprintf("<%d.%s@%s>", time.Now().UnixNano(), hex.EncodeToString(b), domainPart)
}
