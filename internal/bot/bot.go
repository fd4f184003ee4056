package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"teamplay/internal/config"
	"teamplay/internal/logging"
	"teamplay/internal/services"
	"teamplay/internal/session"
)

// Bot wires Telegram updates to the conversation state machine and the
// task services. Updates are handled one at a time, matching the serial
// per-user delivery the state machine assumes.
type Bot struct {
	api      *tgbotapi.BotAPI
	sessions *session.Manager
	tasks    services.TaskService
	listing  services.ListingService

	pollTimeout  time.Duration
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a bot from configuration and already-wired services
func New(cfg *config.Config, sessions *session.Manager, tasks services.TaskService, listing services.ListingService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Bot.Debug

	return &Bot{
		api:          api,
		sessions:     sessions,
		tasks:        tasks,
		listing:      listing,
		pollTimeout:  cfg.Bot.PollTimeout,
		queryTimeout: cfg.GetQueryTimeout(),
		writeTimeout: cfg.GetWriteTimeout(),
	}, nil
}

// Run polls for updates until the context is cancelled. No single update's
// failure is fatal: errors are logged and the loop keeps going.
func (b *Bot) Run(ctx context.Context) error {
	logging.Info("bot started", zap.String("username", b.api.Self.UserName))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = int(b.pollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logging.Info("bot stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				logging.Info("update channel closed")
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate routes a single update to its handler
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.Message != nil:
		b.handleText(ctx, update.Message)
	}
}

// send delivers a message, logging rather than propagating failures
func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		logging.Error("failed to send message", err)
	}
}

// authorName returns the user's preferred handle, falling back to the
// display name
func authorName(user *tgbotapi.User) string {
	if user == nil {
		return "unknown"
	}
	if user.UserName != "" {
		return user.UserName
	}
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return name
}
