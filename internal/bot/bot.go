package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/database"
	"github.com/example/srsqueue/internal/queue"
)

//go:generate mockgen -source=bot.go -destination=mock/bot_mock.go -package=mock_bot

// BotSender is satisfied by *tgbotapi.BotAPI. Request is for calls that
// don't return a message, such as answering a callback query.
type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// DueCountI reports the reconciled due count
type DueCountI interface {
	Count() int
	Update(ctx context.Context, skipServer bool) (int, error)
}

// QueueI is what the commands need from the study queue
type QueueI interface {
	QueueLen() int
	FetchNext(ctx context.Context, opts queue.NextOptions) error
}

// StatsI reports per part totals from the local store
type StatsI interface {
	Statistics(ctx context.Context, lang string, now int64) ([]database.PartStats, error)
}

// Bot sends due reminders to a single chat and answers a few status commands
type Bot struct {
	bot    BotSender
	chatID int64
	due    DueCountI
	queue  QueueI
	stats  StatsI
	lang   string
	logger *zap.Logger
	now    func() time.Time
}

// New creates a bot over an existing sender. lang selects the statistics shown by /stats.
func New(sender BotSender, chatID int64, due DueCountI, q QueueI, stats StatsI, lang string, logger *zap.Logger) *Bot {
	return &Bot{
		bot:    sender,
		chatID: chatID,
		due:    due,
		queue:  q,
		stats:  stats,
		lang:   lang,
		logger: logger,
		now:    time.Now,
	}
}

// NewTelegramAPI connects to Telegram with token. Debug output is enabled in development.
func NewTelegramAPI(token, env string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = env == "development"
	return api, nil
}

// SendReminders implements the scheduler.Notifier interface
func (b *Bot) SendReminders(count int) error {
	msg := tgbotapi.NewMessage(b.chatID, reminderText(count))
	msg.ReplyMarkup = createKeyboard([][]MenuButton{{{Text: ButtonSync, CallbackData: callbackSync}}})

	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Warn("failed to send reminder", zap.Int64("chat", b.chatID), zap.Error(err))
		return err
	}
	b.logger.Info("sent reminder", zap.Int64("chat", b.chatID), zap.Int("due", count))
	return nil
}

// Listen handles updates until ctx is done or updates is closed
func (b *Bot) Listen(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func reminderText(count int) string {
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	return fmt.Sprintf("You have %d %s due for review.", count, noun)
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Warn("failed to send message", zap.Error(err))
	}
}
