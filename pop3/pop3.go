// SPDX-License-Identifier: GPL-3.0-or-later
package pop3

import (
	"bufio"
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/davrk/go-pop3-forward/domain"
	"github.com/davrk/go-pop3-forward/log"
	"github.com/davrk/go-pop3-forward/mail"

	gomessage "github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	gomail "github.com/emersion/go-message/mail"
	"github.com/sirupsen/logrus"
)

// Dialer opens one authenticated POP3 session per drain cycle.
type Dialer struct {
	host     string
	port     int
	useSsl   bool
	username string
	password string
	timeout  time.Duration

	l *logrus.Logger
}

func NewDialer(host string, port int, useSsl bool, username, password string, timeout time.Duration) *Dialer {
	return &Dialer{
		host:     host,
		port:     port,
		useSsl:   useSsl,
		username: username,
		password: password,
		timeout:  timeout,
		l:        log.Logger(log.LOG_POP3),
	}
}

func (d *Dialer) Dial() (domain.MailboxSession, error) {
	addr := net.JoinHostPort(d.host, strconv.Itoa(d.port))

	dialer := &net.Dialer{Timeout: d.timeout}

	var conn net.Conn
	var err error
	if d.useSsl {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{
			ServerName: d.host,
		})
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to %s: %w", addr, err)
	}

	session := &Session{
		conn: conn,
		r:    bufio.NewReader(conn),
		w:    bufio.NewWriter(conn),
		l:    d.l,
	}

	if _, err := session.readOne(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("could not read greeting from %s: %w", addr, err)
	}
	d.l.WithField("host", d.host).Debug("Connected")

	if err := session.auth(d.username, d.password); err != nil {
		conn.Close()
		return nil, fmt.Errorf("could not authenticate: %w", err)
	}
	d.l.Debug("Authenticated")

	count, _, err := session.stat()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("could not enumerate mailbox: %w", err)
	}
	session.count = count

	d.l.WithFields(logrus.Fields{"host": d.host, "messages": count}).Debug("Session ready")
	return session, nil
}

// Session is one connected POP3 session. DELE only marks messages, the
// server drops them when QUIT commits the session.
type Session struct {
	conn  net.Conn
	r     *bufio.Reader
	w     *bufio.Writer
	count int

	l *logrus.Logger
}

func (s *Session) Count() int {
	return s.count
}

func (s *Session) Fetch(index int) (*domain.InboundMessage, error) {
	buf, err := s.cmd("RETR", true, index)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve message %d: %w", index, err)
	}

	msg, err := parseMessage(buf.Bytes(), index)
	if err != nil {
		return nil, fmt.Errorf("could not parse message %d: %w", index, err)
	}

	s.l.WithFields(logrus.Fields{"index": index, "size": msg.Size, "subject": mail.ShortSubject(msg.Subject)}).Debug("Fetched message")
	return msg, nil
}

func (s *Session) Delete(index int) error {
	if _, err := s.cmd("DELE", false, index); err != nil {
		return fmt.Errorf("could not mark message %d deleted: %w", index, err)
	}

	s.l.WithField("index", index).Debug("Marked message deleted")
	return nil
}

// Quit commits marked deletions and closes the connection.
func (s *Session) Quit() error {
	_, cmdErr := s.cmd("QUIT", false)
	closeErr := s.conn.Close()

	if cmdErr != nil {
		return fmt.Errorf("could not quit session: %w", cmdErr)
	}
	if closeErr != nil {
		return fmt.Errorf("could not close connection: %w", closeErr)
	}

	return nil
}

// ---------- wire protocol ----------

var (
	lineBreak   = []byte("\r\n")
	respOK      = []byte("+OK")
	respOKInfo  = []byte("+OK ")
	respErr     = []byte("-ERR")
	respErrInfo = []byte("-ERR ")
)

func (s *Session) send(line string) error {
	if _, err := s.w.WriteString(line + "\r\n"); err != nil {
		return err
	}
	return s.w.Flush()
}

// cmd sends a command and reads the response. Multiline responses are read
// until the "." terminator with byte-stuffed lines unstuffed.
func (s *Session) cmd(cmd string, isMulti bool, args ...interface{}) (*bytes.Buffer, error) {
	cmdLine := cmd
	if len(args) > 0 {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = fmt.Sprintf("%v", a)
		}
		cmdLine = cmd + " " + strings.Join(parts, " ")
	}

	if err := s.send(cmdLine); err != nil {
		return nil, err
	}

	b, err := s.readOne()
	if err != nil {
		return nil, err
	}

	if !isMulti {
		return bytes.NewBuffer(b), nil
	}

	return s.readAll()
}

func (s *Session) readOne() ([]byte, error) {
	b, _, err := s.r.ReadLine()
	if err != nil {
		return nil, err
	}
	return parseResp(b)
}

func (s *Session) readAll() (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	for {
		b, _, err := s.r.ReadLine()
		if err != nil {
			return nil, err
		}
		if bytes.Equal(b, []byte(".")) {
			break
		}
		if bytes.HasPrefix(b, []byte("..")) {
			b = b[1:]
		}
		buf.Write(b)
		buf.Write(lineBreak)
	}
	return buf, nil
}

func (s *Session) auth(user, password string) error {
	if _, err := s.cmd("USER", false, user); err != nil {
		return err
	}
	if _, err := s.cmd("PASS", false, password); err != nil {
		return err
	}
	return nil
}

func (s *Session) stat() (count, size int, err error) {
	b, err := s.cmd("STAT", false)
	if err != nil {
		return 0, 0, err
	}
	f := bytes.Fields(b.Bytes())
	if len(f) < 2 {
		return 0, 0, fmt.Errorf("malformed STAT response %q", b.String())
	}
	count, err = strconv.Atoi(string(f[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed STAT count %q", string(f[0]))
	}
	size, err = strconv.Atoi(string(f[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed STAT size %q", string(f[1]))
	}
	return count, size, nil
}

func parseResp(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if bytes.Equal(b, respOK) {
		return nil, nil
	}
	if bytes.HasPrefix(b, respOKInfo) {
		return bytes.TrimPrefix(b, respOKInfo), nil
	}
	if bytes.Equal(b, respErr) {
		return nil, errors.New("pop3: unknown error")
	}
	if bytes.HasPrefix(b, respErrInfo) {
		return nil, fmt.Errorf("pop3: %s", bytes.TrimPrefix(b, respErrInfo))
	}
	return nil, fmt.Errorf("pop3: unexpected response %q", string(b))
}

// ---------- message conversion ----------

func parseMessage(raw []byte, index int) (*domain.InboundMessage, error) {
	entity, err := gomessage.Read(bytes.NewReader(raw))
	if err != nil && !gomessage.IsUnknownCharset(err) {
		return nil, err
	}

	h := gomail.Header{Header: entity.Header}

	subjectHeader := entity.Header.Get("Subject")
	subject := mail.DecodeSubject(subjectHeader)

	from := ""
	if fromList, err := h.AddressList("From"); err == nil && len(fromList) > 0 {
		from = fromList[0].Address
	}

	var to []string
	if toList, err := h.AddressList("To"); err == nil {
		for _, a := range toList {
			to = append(to, a.Address)
		}
	}

	// The hash is best-effort, a message without usable id headers simply
	// cannot be journaled.
	idHash, _ := mail.MessageIdHash(raw)

	return &domain.InboundMessage{
		Index:   index,
		From:    from,
		To:      to,
		Subject: subject,

		Raw:  raw,
		Body: rawBody(raw),
		Size: len(raw),

		ContentType:             entity.Header.Get("Content-Type"),
		ContentTransferEncoding: entity.Header.Get("Content-Transfer-Encoding"),
		MimeVersion:             entity.Header.Get("Mime-Version"),

		IdHash: idHash,
	}, nil
}

// rawBody returns the bytes after the header block, still in their original
// transfer encoding so the copied content headers keep describing them.
func rawBody(raw []byte) []byte {
	if idx := bytes.Index(raw, []byte("\r\n\r\n")); idx >= 0 {
		return raw[idx+4:]
	}
	if idx := bytes.Index(raw, []byte("\n\n")); idx >= 0 {
		return raw[idx+2:]
	}
	return nil
}
