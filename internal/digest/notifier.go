package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/preston-bernstein/nba-recap-service/internal/logging"
)

// ErrChatIDMissing is returned when a Telegram notifier has no destination chat.
var ErrChatIDMissing = errors.New("telegram chat id not set")

// Notifier delivers a rendered recap.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// LogNotifier writes the recap to the logger. It is used when no Telegram token is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, text string) error {
	logging.Info(logging.FromContext(ctx, n.Logger), "daily digest", slog.String("text", text))
	return nil
}

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts the recap to one Telegram chat.
type TelegramNotifier struct {
	bot    messageSender
	chatID int64
}

// NewTelegramNotifier authorizes the bot token against the Telegram API.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if chatID == 0 {
		return nil, ErrChatIDMissing
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return newTelegramNotifier(bot, chatID), nil
}

func newTelegramNotifier(bot messageSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	if n.chatID == 0 {
		return ErrChatIDMissing
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, toTelegramMarkdown(text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// toTelegramMarkdown maps the recap's bold markers to Telegram's legacy markdown.
func toTelegramMarkdown(text string) string {
	return strings.ReplaceAll(text, "**", "*")
}
