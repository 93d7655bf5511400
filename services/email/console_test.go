package emailsvc

import (
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FidelisKagashe26/godcares/core"
	testutil "github.com/FidelisKagashe26/godcares/tests"
)

func Test_consoleService_send(t *testing.T) {
	conf := core.NewTestConfig("")
	from := conf.DefaultFromEmail()
	to := []mail.Address{{Name: "Neema", Address: "neema@example.com"}}

	tests := []struct {
		name     string
		msg      func() *core.EmailMessage
		wantSent bool
		want     []string
	}{
		{
			name: "plain text",
			msg: func() *core.EmailMessage {
				return &core.EmailMessage{To: to, Subject: "Karibu", BodyStr: "Asante kwa kujiunga"}
			},
			want: []string{
				"From: " + from.String() + "\r\n",
				"Subject: [GodCares] Karibu\r\n",
				"Asante kwa kujiunga",
			},
			wantSent: true,
		},
		{
			name: "with attachment",
			msg: func() *core.EmailMessage {
				msg := &core.EmailMessage{To: to, Subject: "Risiti", BodyStr: "Risiti yako imeambatishwa"}
				require.NoError(t, msg.Attach(strings.NewReader(`{"tracking_code": "GC-0001"}`), "GC-0001.json", "application/json"))
				return msg
			},
			want: []string{
				"From: " + from.String() + "\r\n",
				"multipart/mixed",
				"attachment; filename=GC-0001.json",
			},
			wantSent: true,
		},
		{
			name: "no recipients",
			msg:  func() *core.EmailMessage { return &core.EmailMessage{Subject: "Tupu", BodyStr: "hakuna mpokeaji"} },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetSentMessages()
			logger := new(testutil.Logger)
			svc := consoleService{conf: conf, logger: logger, subjPrefix: "[" + conf.AppName + "] "}

			svc.sendMessage(tt.msg())

			out := strings.Join(logger.Entries("info"), "\n")
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			if tt.wantSent {
				assert.Len(t, Sent(), 1)
			} else {
				assert.Empty(t, out)
				assert.Empty(t, Sent())
			}
		})
	}
}

func Test_consoleServiceMock(t *testing.T) {
	ResetSentMessages()
	svc := NewConsoleServiceMock(core.NewTestConfig(""))

	svc.SendMessages(
		&core.EmailMessage{To: []mail.Address{{Address: "a@example.com"}}, BodyStr: "moja"},
		&core.EmailMessage{To: []mail.Address{{Address: "b@example.com"}}, BodyStr: "mbili"},
	)

	sent := Sent()
	require.Len(t, sent, 2, "the mock sends synchronously")
	assert.Equal(t, "moja", sent[0].TextContent)
	assert.Equal(t, "mbili", sent[1].TextContent)
}
