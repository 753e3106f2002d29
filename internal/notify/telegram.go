package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/freshtrackhq/freshtrack/internal/domain"
)

// TelegramNotifier delivers reminders as Telegram messages to a single chat.
// Future reminders are armed with in-process timers; CancelAll disarms them,
// which makes the cancel-then-replace reconciliation policy safe to repeat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger

	mu     sync.Mutex
	timers []*time.Timer
}

func NewTelegramNotifier(token string, chatID int64, log *slog.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, log: log}, nil
}

// RequestPermission checks that the bot token is still accepted. A revoked
// token reads as permission denied rather than a hard failure.
func (n *TelegramNotifier) RequestPermission(ctx context.Context) (bool, error) {
	if _, err := n.bot.GetMe(); err != nil {
		n.log.Warn("telegram bot unavailable", "err", err)
		return false, nil
	}
	return true, nil
}

func (n *TelegramNotifier) CancelAll(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, t := range n.timers {
		t.Stop()
	}
	n.timers = nil
	return nil
}

func (n *TelegramNotifier) Schedule(ctx context.Context, ev domain.ReminderEvent) error {
	delay := time.Until(ev.FireAt)
	if ev.Immediate || delay <= 0 {
		return n.send(ev)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.timers = append(n.timers, time.AfterFunc(delay, func() {
		if err := n.send(ev); err != nil {
			n.log.Warn("sending reminder failed", "item_id", ev.ItemID, "kind", ev.Kind, "err", err)
		}
	}))
	return nil
}

func (n *TelegramNotifier) send(ev domain.ReminderEvent) error {
	msg := tgbotapi.NewMessage(n.chatID, ev.Title+"\n"+ev.Body)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}
