// Package notifier fans notification text out to its destinations.
package notifier

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Console logs every notification; always on, so a bare deployment still
// shows what would have been sent.
type Console struct{}

func (Console) Notify(_ context.Context, text string) error {
	log.Printf("[notify] %s", text)
	return nil
}

// Telegram pushes notifications into a chat, typically the ops group.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) Notify(_ context.Context, text string) error {
	_, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text))
	return err
}
