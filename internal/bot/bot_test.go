package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mock_bot "github.com/example/srsqueue/internal/bot/mock"
	"github.com/example/srsqueue/internal/database"
	"github.com/example/srsqueue/pkg/models"
)

const testChat int64 = 123

func newBotMock(t *testing.T, setup func(*mock_bot.MockDueCountI, *mock_bot.MockQueueI)) (*Bot, *mock_bot.MockBot) {
	return newBotWithStats(t, setup, nil)
}

func newBotWithStats(t *testing.T, setup func(*mock_bot.MockDueCountI, *mock_bot.MockQueueI), setupStats func(*mock_bot.MockStatsI)) (*Bot, *mock_bot.MockBot) {
	ctrl := gomock.NewController(t)
	due := mock_bot.NewMockDueCountI(ctrl)
	q := mock_bot.NewMockQueueI(ctrl)
	stats := mock_bot.NewMockStatsI(ctrl)
	sender := &mock_bot.MockBot{}
	if setup != nil {
		setup(due, q)
	}
	if setupStats != nil {
		setupStats(stats)
	}
	b := New(sender, testChat, due, q, stats, "zh", zap.NewNop())
	b.now = func() time.Time { return time.Unix(5000, 0) }
	return b, sender
}

func command(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}},
	}}
}

func messageText(t *testing.T, c tgbotapi.Chattable) string {
	t.Helper()
	msg, ok := c.(tgbotapi.MessageConfig)
	require.True(t, ok, "expected MessageConfig, got %T", c)
	assert.Equal(t, testChat, msg.ChatID)
	return msg.Text
}

func TestReminderText(t *testing.T) {
	assert.Equal(t, "You have 1 item due for review.", reminderText(1))
	assert.Equal(t, "You have 12 items due for review.", reminderText(12))
}

func TestBot_SendReminders(t *testing.T) {
	b, sender := newBotMock(t, nil)

	require.NoError(t, b.SendReminders(3))
	require.Len(t, sender.SentMessages, 1)

	msg := sender.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "You have 3 items due for review.", msg.Text)
	keyboard, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, keyboard.InlineKeyboard, 1)
	assert.Equal(t, callbackSync, *keyboard.InlineKeyboard[0][0].CallbackData)
}

func TestBot_SendRemindersError(t *testing.T) {
	b, sender := newBotMock(t, nil)
	sender.Err = errors.New("forbidden")

	assert.Error(t, b.SendReminders(3))
}

func TestBot_HandleUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		update   tgbotapi.Update
		setup    func(*mock_bot.MockDueCountI, *mock_bot.MockQueueI)
		wantText []string
	}{
		{
			name:   "due command",
			update: command(testChat, "/due"),
			setup: func(d *mock_bot.MockDueCountI, q *mock_bot.MockQueueI) {
				d.EXPECT().Count().Return(4)
				q.EXPECT().QueueLen().Return(9)
			},
			wantText: []string{"You have 4 items due for review.\n9 queued locally."},
		},
		{
			name:   "sync command",
			update: command(testChat, "/sync"),
			setup: func(d *mock_bot.MockDueCountI, q *mock_bot.MockQueueI) {
				gomock.InOrder(
					q.EXPECT().FetchNext(gomock.Any(), gomock.Any()).Return(nil),
					d.EXPECT().Update(gomock.Any(), false).Return(1, nil),
				)
			},
			wantText: []string{"Synced. You have 1 item due for review."},
		},
		{
			name:   "sync fetch fails",
			update: command(testChat, "/sync"),
			setup: func(d *mock_bot.MockDueCountI, q *mock_bot.MockQueueI) {
				q.EXPECT().FetchNext(gomock.Any(), gomock.Any()).Return(errors.New("offline"))
			},
			wantText: []string{"Sync failed, try again later."},
		},
		{
			name:     "unknown command",
			update:   command(testChat, "/quiz"),
			wantText: []string{"Unknown command. Use /help"},
		},
		{
			name:   "other chat ignored",
			update: command(999, "/due"),
		},
		{
			name: "plain text ignored",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: testChat},
				Text: "hello",
			}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, sender := newBotMock(t, tt.setup)

			b.handleUpdate(context.Background(), tt.update)

			require.Len(t, sender.SentMessages, len(tt.wantText))
			for i, want := range tt.wantText {
				assert.Equal(t, want, messageText(t, sender.SentMessages[i]))
			}
		})
	}
}

func TestBot_StatsCommand(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*mock_bot.MockStatsI)
		want  string
	}{
		{
			name: "per part lines",
			setup: func(m *mock_bot.MockStatsI) {
				m.EXPECT().Statistics(gomock.Any(), "zh", int64(5000)).Return([]database.PartStats{
					{Part: models.PartDefinition, Items: 10, Studied: 8, Due: 3, Reviews: 20, Successes: 15},
					{Part: models.PartRune, Items: 2},
				}, nil)
			},
			want: "📊 Progress\n\ndefn: 10 items, 8 studied, 3 due, 75% correct\nrune: 2 items, 0 studied, 0 due, 0% correct",
		},
		{
			name: "empty store",
			setup: func(m *mock_bot.MockStatsI) {
				m.EXPECT().Statistics(gomock.Any(), "zh", int64(5000)).Return(nil, nil)
			},
			want: "No items stored yet.",
		},
		{
			name: "store error",
			setup: func(m *mock_bot.MockStatsI) {
				m.EXPECT().Statistics(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("locked"))
			},
			want: "Statistics are unavailable right now.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, sender := newBotWithStats(t, nil, tt.setup)

			b.handleUpdate(context.Background(), command(testChat, "/stats"))

			require.Len(t, sender.SentMessages, 1)
			assert.Equal(t, tt.want, messageText(t, sender.SentMessages[0]))
		})
	}
}

func TestBot_SyncCallback(t *testing.T) {
	b, sender := newBotMock(t, func(d *mock_bot.MockDueCountI, q *mock_bot.MockQueueI) {
		q.EXPECT().FetchNext(gomock.Any(), gomock.Any()).Return(nil)
		d.EXPECT().Update(gomock.Any(), false).Return(0, nil)
	})

	b.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		Data:    callbackSync,
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: testChat}},
	}})

	require.Len(t, sender.Requests, 1)
	answer, ok := sender.Requests[0].(tgbotapi.CallbackConfig)
	require.True(t, ok)
	assert.Equal(t, "cb-1", answer.CallbackQueryID)

	require.Len(t, sender.SentMessages, 1)
	assert.Equal(t, "Synced. You have 0 items due for review.", messageText(t, sender.SentMessages[0]))
}

func TestBot_CallbackAnsweredWithRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock_bot.NewMockBotSender(ctrl)
	due := mock_bot.NewMockDueCountI(ctrl)
	q := mock_bot.NewMockQueueI(ctrl)

	q.EXPECT().FetchNext(gomock.Any(), gomock.Any()).Return(nil)
	due.EXPECT().Update(gomock.Any(), false).Return(2, nil)
	gomock.InOrder(
		sender.EXPECT().Request(gomock.AssignableToTypeOf(tgbotapi.CallbackConfig{})).
			Return(&tgbotapi.APIResponse{Ok: true}, nil),
		sender.EXPECT().Send(gomock.AssignableToTypeOf(tgbotapi.MessageConfig{})).
			Return(tgbotapi.Message{Chat: &tgbotapi.Chat{ID: testChat}}, nil),
	)

	b := New(sender, testChat, due, q, mock_bot.NewMockStatsI(ctrl), "zh", zap.NewNop())
	b.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-2",
		Data:    callbackSync,
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: testChat}},
	}})
}

func TestBot_Listen(t *testing.T) {
	b, sender := newBotMock(t, func(d *mock_bot.MockDueCountI, q *mock_bot.MockQueueI) {
		d.EXPECT().Count().Return(2)
		q.EXPECT().QueueLen().Return(0)
	})

	updates := make(chan tgbotapi.Update, 1)
	updates <- command(testChat, "/due")
	close(updates)

	b.Listen(context.Background(), updates)
	assert.Len(t, sender.SentMessages, 1)
}

func TestBot_ListenStopsOnCancel(t *testing.T) {
	b, _ := newBotMock(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		b.Listen(ctx, make(chan tgbotapi.Update))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after cancel")
	}
}
