package dispatch

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessageSender is the raw Telegram boundary. channel is either a numeric
// chat ID or a public @channelname.
type MessageSender interface {
	Send(channel, text string, markdown bool) error
}

// TelegramSender is the production MessageSender backed by the Bot API.
type TelegramSender struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramSender authenticates the bot token up front so a bad token
// fails at startup, not at digest time.
func NewTelegramSender(token string) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		return nil, fmt.Errorf("failed to get bot info: %w", err)
	}
	return &TelegramSender{bot: bot}, nil
}

func (s *TelegramSender) Send(channel, text string, markdown bool) error {
	var msg tgbotapi.MessageConfig
	if chatID, err := strconv.ParseInt(channel, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(channel, text)
	}
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
