package emailsvc

import (
	"bytes"
	"net/mail"
	"strings"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/educonnect/core"
	"github.com/trezcool/educonnect/tests"
)

func reminder() *core.EmailMessage {
	return &core.EmailMessage{
		To:          []mail.Address{{Name: "Wei Chen", Address: "michael.c@email.com"}},
		Subject:     "Fee reminder",
		TextContent: "A payment of $1310.00 is pending.",
	}
}

func TestConsoleService(t *testing.T) {
	buf := new(bytes.Buffer)
	svc := newConsoleService(core.NewTestConfig(), new(testutil.Logger), buf)

	msg := reminder()
	require.NoError(t, msg.Attach(strings.NewReader("id,amount\n2,1310\n"), "fees.csv", "text/csv"))
	require.NoError(t, svc.send(*msg))

	out := buf.String()
	assert.Contains(t, out, `From: "EduConnect" <noreply@school.edu>`)
	assert.Contains(t, out, "Subject: [EduConnect] Fee reminder")
	assert.Contains(t, out, `To: "Wei Chen" <michael.c@email.com>`)
	assert.Contains(t, out, "multipart/mixed")
	assert.Contains(t, out, "filename=fees.csv")
}

func TestConsoleServiceMock(t *testing.T) {
	svc := NewConsoleServiceMock(core.NewTestConfig(), new(testutil.Logger))

	noRecipient := reminder()
	noRecipient.To = nil
	noContent := reminder()
	noContent.TextContent = ""

	svc.SendMessages(reminder(), noRecipient, noContent)
	sent := svc.SentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "Fee reminder", sent[0].Subject)
}

func TestSendgridService(t *testing.T) {
	conf := core.NewTestConfig()
	conf.SendgridApiKey = "SG.test"
	logger := new(testutil.Logger)
	svc := NewSendgridService(conf, logger)

	m := svc.prepare(*reminder())
	require.Len(t, m.Personalizations, 1)
	assert.Equal(t, "[EduConnect] Fee reminder", m.Personalizations[0].Subject)
	assert.Equal(t, "michael.c@email.com", m.Personalizations[0].To[0].Address)
	require.Len(t, m.Content, 1, "no html part without html content")
	assert.Equal(t, "text/plain", m.Content[0].Type)

	var got rest.Request
	sendgridAPI = func(req rest.Request) (*rest.Response, error) {
		got = req
		return &rest.Response{StatusCode: 400, Body: `{"errors":[]}`}, nil
	}
	defer func() { sendgridAPI = defaultSendgridAPI }()

	svc.send(*reminder())
	assert.Equal(t, rest.Post, got.Method)
	assert.Equal(t, "Bearer SG.test", got.Headers["Authorization"])
	assert.Equal(t, 1, logger.Count("ERROR"))
}
