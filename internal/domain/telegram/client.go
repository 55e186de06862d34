package telegram

import "gopkg.in/telebot.v3"

// Client is the outbound messaging contract consumed by the reminder
// pipeline. It decouples the application services from the bot library so the
// daily evaluation can be tested against a fake.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
