package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/queue"
)

const (
	ButtonSync   = "🔄 Sync now"
	callbackSync = "sync"
)

// MenuButton represents a button in an inline keyboard
type MenuButton struct {
	Text         string
	CallbackData string
}

func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		if update.Message.Chat == nil || update.Message.Chat.ID != b.chatID {
			b.logger.Debug("ignoring message from unknown chat")
			return
		}
		if update.Message.IsCommand() {
			b.handleCommand(ctx, update.Message)
		}
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "help":
		b.send(tgbotapi.NewMessage(b.chatID, "Commands:\n/due shows how many items are due\n/sync fetches the next batch and refreshes the count\n/stats shows progress per part"))
	case "due":
		b.handleDueCommand()
	case "sync":
		b.handleSync(ctx)
	case "stats":
		b.handleStatsCommand(ctx)
	default:
		b.send(tgbotapi.NewMessage(b.chatID, "Unknown command. Use /help"))
	}
}

func (b *Bot) handleDueCommand() {
	text := fmt.Sprintf("%s\n%d queued locally.", reminderText(b.due.Count()), b.queue.QueueLen())
	b.send(tgbotapi.NewMessage(b.chatID, text))
}

func (b *Bot) handleStatsCommand(ctx context.Context) {
	stats, err := b.stats.Statistics(ctx, b.lang, b.now().Unix())
	if err != nil {
		b.logger.Warn("failed to load statistics", zap.Error(err))
		b.send(tgbotapi.NewMessage(b.chatID, "Statistics are unavailable right now."))
		return
	}
	if len(stats) == 0 {
		b.send(tgbotapi.NewMessage(b.chatID, "No items stored yet."))
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Progress\n")
	for _, s := range stats {
		fmt.Fprintf(&sb, "\n%s: %d items, %d studied, %d due, %.0f%% correct",
			s.Part, s.Items, s.Studied, s.Due, s.Accuracy()*100)
	}
	b.send(tgbotapi.NewMessage(b.chatID, sb.String()))
}

func (b *Bot) handleSync(ctx context.Context) {
	if err := b.queue.FetchNext(ctx, queue.NextOptions{}); err != nil {
		b.logger.Warn("sync fetch failed", zap.Error(err))
		b.send(tgbotapi.NewMessage(b.chatID, "Sync failed, try again later."))
		return
	}
	count, err := b.due.Update(ctx, false)
	if err != nil {
		b.logger.Warn("sync due count failed", zap.Error(err))
	}
	b.send(tgbotapi.NewMessage(b.chatID, fmt.Sprintf("Synced. %s", reminderText(count))))
}

func (b *Bot) handleCallbackQuery(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil || callback.Message.Chat.ID != b.chatID {
		return
	}
	answer := tgbotapi.NewCallback(callback.ID, "")
	answer.ShowAlert = false
	if _, err := b.bot.Request(answer); err != nil {
		b.logger.Warn("failed to answer callback", zap.String("callback", callback.ID), zap.Error(err))
	}

	switch callback.Data {
	case callbackSync:
		b.handleSync(ctx)
	default:
		b.logger.Debug("unknown callback", zap.String("data", callback.Data))
	}
}
