package services

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// smtpSession is what the fake server saw during one connection
type smtpSession struct {
	from string
	rcpt []string
	data string
}

// startFakeSMTP accepts a single connection and speaks just enough SMTP for
// net/smtp. It advertises neither STARTTLS nor AUTH. rejectRcpt makes RCPT fail.
func startFakeSMTP(t *testing.T, rejectRcpt bool) (host string, port int, sessions <-chan smtpSession) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	out := make(chan smtpSession, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		tp := textproto.NewConn(conn)
		var s smtpSession
		defer func() { out <- s }()

		_ = tp.PrintfLine("220 localhost ESMTP test")
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"):
				_ = tp.PrintfLine("250 localhost")
			case strings.HasPrefix(cmd, "MAIL FROM:"):
				s.from = strings.Trim(line[len("MAIL FROM:"):], "<> ")
				_ = tp.PrintfLine("250 OK")
			case strings.HasPrefix(cmd, "RCPT TO:"):
				if rejectRcpt {
					_ = tp.PrintfLine("550 mailbox unavailable")
					continue
				}
				s.rcpt = append(s.rcpt, strings.Trim(line[len("RCPT TO:"):], "<> "))
				_ = tp.PrintfLine("250 OK")
			case cmd == "DATA":
				_ = tp.PrintfLine("354 go ahead")
				data, err := io.ReadAll(tp.DotReader())
				if err != nil {
					return
				}
				s.data = string(data)
				_ = tp.PrintfLine("250 queued")
			case cmd == "RSET" || cmd == "NOOP":
				_ = tp.PrintfLine("250 OK")
			case cmd == "QUIT":
				_ = tp.PrintfLine("221 bye")
				return
			default:
				_ = tp.PrintfLine("502 not implemented")
			}
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	return addr.IP.String(), addr.Port, out
}

func testEmail() *Email {
	return &Email{
		To:       []string{"info@purebizlaundry.com"},
		Subject:  "New Pickup Request from Café Azul",
		HTMLBody: "<p>Pickup at 3:00 PM</p>",
		TextBody: "Pickup at 3:00 PM",
	}
}

func TestSMTPMailerSend(t *testing.T) {
	host, port, sessions := startFakeSMTP(t, false)
	m := NewSMTPMailer(SMTPOptions{
		Host:     host,
		Port:     port,
		From:     "noreply@purebizlaundry.com",
		FromName: "PureBiz Laundry Services",
	}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, m.Send(ctx, testEmail()))

	s := <-sessions
	assert.Equal(t, "noreply@purebizlaundry.com", s.from)
	assert.Equal(t, []string{"info@purebizlaundry.com"}, s.rcpt)

	msg, err := mail.ReadMessage(strings.NewReader(s.data))
	require.NoError(t, err)
	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "New Pickup Request from Café Azul", subject)
}

func TestSMTPMailerRejectedRecipient(t *testing.T) {
	host, port, _ := startFakeSMTP(t, true)
	m := NewSMTPMailer(SMTPOptions{Host: host, Port: port, From: "noreply@purebizlaundry.com"}, zap.NewNop())

	err := m.Send(context.Background(), testEmail())
	assert.ErrorContains(t, err, "smtp RCPT TO info@purebizlaundry.com")
}

func TestSMTPMailerDialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	m := NewSMTPMailer(SMTPOptions{Host: "127.0.0.1", Port: port, From: "noreply@purebizlaundry.com"}, zap.NewNop())
	err = m.Send(context.Background(), testEmail())
	assert.ErrorContains(t, err, "smtp dial 127.0.0.1:"+strconv.Itoa(port))
}

func TestSMTPMailerInvalidEmail(t *testing.T) {
	m := NewSMTPMailer(SMTPOptions{Host: "127.0.0.1", Port: 1}, zap.NewNop())
	assert.ErrorContains(t, m.Send(context.Background(), &Email{To: []string{"a@b.c"}}), "either HTMLBody or TextBody")
}

func TestNewSMTPMailer(t *testing.T) {
	t.Run("Implicit TLS on 465", func(t *testing.T) {
		m := NewSMTPMailer(SMTPOptions{Host: "smtp.gmail.com", Port: 465, Username: "u", Password: "p"}, zap.NewNop())
		assert.True(t, m.implicitTLS)
		assert.NotNil(t, m.auth)
		assert.Equal(t, "smtp.gmail.com:465", m.addr)
	})

	t.Run("Submission port without credentials", func(t *testing.T) {
		m := NewSMTPMailer(SMTPOptions{Host: "smtp.gmail.com", Port: 587}, zap.NewNop())
		assert.False(t, m.implicitTLS)
		assert.Nil(t, m.auth)
	})
}

func TestBuildMIMEMessage(t *testing.T) {
	from := mail.Address{Name: "PureBiz Laundry Services", Address: "noreply@purebizlaundry.com"}
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	raw, err := buildMIMEMessage(from, testEmail(), now)
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	assert.Equal(t, `"PureBiz Laundry Services" <noreply@purebizlaundry.com>`, msg.Header.Get("From"))
	assert.Equal(t, "info@purebizlaundry.com", msg.Header.Get("To"))
	assert.Equal(t, "1.0", msg.Header.Get("MIME-Version"))
	assert.Equal(t, now.Format(time.RFC1123Z), msg.Header.Get("Date"))
	assert.True(t, strings.HasSuffix(msg.Header.Get("Message-ID"), "@purebizlaundry.com>"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	var types, bodies []string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		body, err := io.ReadAll(part)
		require.NoError(t, err)
		types = append(types, part.Header.Get("Content-Type"))
		bodies = append(bodies, string(body))
	}

	assert.Equal(t, []string{"text/plain; charset=UTF-8", "text/html; charset=UTF-8"}, types)
	assert.Equal(t, []string{"Pickup at 3:00 PM", "<p>Pickup at 3:00 PM</p>"}, bodies)
}

func TestBuildMIMEMessageTextOnly(t *testing.T) {
	email := &Email{To: []string{"a@example.com", "b@example.com"}, Subject: "Hi", TextBody: "plain"}
	raw, err := buildMIMEMessage(mail.Address{Address: "noreply@purebizlaundry.com"}, email, time.Now())
	require.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, "To: a@example.com, b@example.com\r\n")
	assert.NotContains(t, s, "text/html")
}
