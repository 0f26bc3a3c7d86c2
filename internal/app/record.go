// internal/app/record.go
package app

import (
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"
)

// textMessage returns the message of upd if it is a text message with a
// known sender, and false for every other kind of update.
func textMessage(upd telebot.Update) (*telebot.Message, bool) {
	msg := upd.Message
	if msg == nil || msg.Text == "" || msg.Sender == nil || msg.Chat == nil {
		return nil, false
	}
	return msg, true
}

// FormatRecord renders a text message as one output line:
// username,first_name,last_name,sender_id,chat_id,date,text
// Fields are written verbatim without quoting.
func FormatRecord(msg *telebot.Message) string {
	var sb strings.Builder
	sb.WriteString(msg.Sender.Username)
	sb.WriteByte(',')
	sb.WriteString(msg.Sender.FirstName)
	sb.WriteByte(',')
	sb.WriteString(msg.Sender.LastName)
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatInt(msg.Sender.ID, 10))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatInt(msg.Chat.ID, 10))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatInt(msg.Unixtime, 10))
	sb.WriteByte(',')
	sb.WriteString(msg.Text)
	sb.WriteByte('\n')
	return sb.String()
}
