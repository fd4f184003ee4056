package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"teamplay/internal/errors"
	"teamplay/internal/logging"
)

const (
	welcomeMessage = "👋 Hi! I'm the team task bot.\n\n" +
		"📋 Available commands:\n" +
		"/add - Add a new task\n" +
		"/list - Show all tasks\n" +
		"/list_csv - Export tasks as a CSV file\n" +
		"/cancel - Cancel the current action\n" +
		"/start - Show this message"

	chooseCategoryMessage = "📂 Choose a category for the new task:"
	cancelledMessage      = "✅ Action cancelled."
	nothingToCancel       = "❌ Nothing to cancel."
	genericFailure        = "⚠️ Something went wrong. Please try again."
	emptyExportMessage    = "📋 The task list is empty. Nothing to export."
)

// handleCommand dispatches a slash command
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	logging.Debug("handling command",
		zap.String("command", message.Command()),
		zap.Int64("user_id", message.From.ID))

	switch message.Command() {
	case "start":
		b.send(tgbotapi.NewMessage(message.Chat.ID, welcomeMessage))
	case "add":
		b.handleAdd(message)
	case "cancel":
		b.handleCancel(message)
	case "list":
		b.handleList(ctx, message)
	case "list_csv":
		b.handleListCSV(ctx, message)
	default:
		// Unknown commands are ignored, like any other unroutable event
	}
}

// handleAdd starts (or restarts) the add-task flow and presents the
// category keyboard
func (b *Bot) handleAdd(message *tgbotapi.Message) {
	categories := b.sessions.StartAdd(message.From.ID)

	reply := tgbotapi.NewMessage(message.Chat.ID, chooseCategoryMessage)
	reply.ReplyMarkup = CategoriesKeyboard(categories)
	b.send(reply)
}

// handleCallback processes a category button press. Invalid-state and
// unknown-category failures are swallowed: the button is simply
// acknowledged without effect.
func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	// Acknowledge the button press either way so the client stops its spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		logging.Error("failed to answer callback", err)
	}

	if !strings.HasPrefix(callback.Data, categoryCallbackPrefix) {
		return
	}
	category := strings.TrimPrefix(callback.Data, categoryCallbackPrefix)

	if err := b.sessions.SelectCategory(callback.From.ID, category); err != nil {
		if errors.ShouldLogError(err) {
			logging.Error("category selection failed", err, zap.Int64("user_id", callback.From.ID))
		}
		return
	}

	if callback.Message == nil {
		return
	}

	// Replace the keyboard message with a confirmation and the text prompt
	edit := tgbotapi.NewEditMessageText(
		callback.Message.Chat.ID,
		callback.Message.MessageID,
		fmt.Sprintf("✅ Category: %s\n\n📝 Now send the task text.\nSend /cancel to abort.", category),
	)
	b.send(edit)
}

// handleCancel resets the user's session
func (b *Bot) handleCancel(message *tgbotapi.Message) {
	if b.sessions.Cancel(message.From.ID) {
		b.send(tgbotapi.NewMessage(message.Chat.ID, cancelledMessage))
	} else {
		b.send(tgbotapi.NewMessage(message.Chat.ID, nothingToCancel))
	}
}

// handleText treats a plain message as task text when the user's session is
// awaiting it, and ignores it otherwise
func (b *Bot) handleText(ctx context.Context, message *tgbotapi.Message) {
	writeCtx, cancel := context.WithTimeout(ctx, b.writeTimeout)
	defer cancel()

	task, err := b.sessions.SubmitText(writeCtx, message.From.ID, authorName(message.From), message.Text)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeInvalidState) {
			// Not part of an add flow; nothing to do with this text
			return
		}
		if errors.ShouldLogError(err) {
			logging.Error("task creation failed", err, zap.Int64("user_id", message.From.ID))
			b.send(tgbotapi.NewMessage(message.Chat.ID, genericFailure))
			return
		}
		b.send(tgbotapi.NewMessage(message.Chat.ID, errors.GetUserMessage(err)))
		return
	}

	confirmation := fmt.Sprintf(
		"✅ Task #%d added!\n\n📂 Category: %s\n📝 %s\n👤 Author: %s",
		task.ID, task.Category, task.Text, task.Author,
	)
	b.send(tgbotapi.NewMessage(message.Chat.ID, confirmation))
}

// handleList renders the grouped task list and delivers it chunk by chunk
func (b *Bot) handleList(ctx context.Context, message *tgbotapi.Message) {
	queryCtx, cancel := context.WithTimeout(ctx, b.queryTimeout)
	defer cancel()

	tasks, err := b.tasks.ListAll(queryCtx)
	if err != nil {
		logging.Error("listing tasks failed", err)
		b.send(tgbotapi.NewMessage(message.Chat.ID, genericFailure))
		return
	}

	for _, chunk := range b.listing.RenderList(tasks) {
		b.send(tgbotapi.NewMessage(message.Chat.ID, chunk))
	}
}

// handleListCSV exports all tasks as a CSV document
func (b *Bot) handleListCSV(ctx context.Context, message *tgbotapi.Message) {
	queryCtx, cancel := context.WithTimeout(ctx, b.queryTimeout)
	defer cancel()

	tasks, err := b.tasks.ListAll(queryCtx)
	if err != nil {
		logging.Error("listing tasks for export failed", err)
		b.send(tgbotapi.NewMessage(message.Chat.ID, genericFailure))
		return
	}

	if len(tasks) == 0 {
		b.send(tgbotapi.NewMessage(message.Chat.ID, emptyExportMessage))
		return
	}

	data, err := b.listing.RenderCSV(tasks)
	if err != nil {
		logging.Error("rendering CSV failed", err)
		b.send(tgbotapi.NewMessage(message.Chat.ID, genericFailure))
		return
	}

	document := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  "tasks.csv",
		Bytes: data,
	})
	document.Caption = fmt.Sprintf("📊 Exported %d task(s) as CSV", len(tasks))
	b.send(document)
}
