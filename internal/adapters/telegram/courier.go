package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"cateringbot/internal/ports/output"
)

var _ output.Courier = (*Courier)(nil)

// Courier sends outbound traffic through the Telegram Bot API.
type Courier struct {
	api *tgbotapi.BotAPI
}

func NewCourier(api *tgbotapi.BotAPI) *Courier {
	return &Courier{api: api}
}

func (c *Courier) SendMessage(_ context.Context, chatID int64, text string) error {
	_, err := c.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (c *Courier) SendMarkdown(_ context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.api.Send(msg)
	return err
}

func (c *Courier) SendDocument(_ context.Context, chatID int64, path string, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	_, err := c.api.Send(doc)
	return err
}
