package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"cateringbot/internal/application"
	"cateringbot/internal/ports/input"
	"cateringbot/internal/ports/output"
)

// Handler routes Telegram messages to use cases. Commands are dispatched
// directly; any other text advances the sender's conversation.
type Handler struct {
	conversation input.ConversationUseCase
	events       input.EventUseCase
	team         input.TeamUseCase
	directory    input.DirectoryUseCase
	registry     *application.DepartmentRegistry
	courier      output.Courier
	tr           output.T
	adminUserID  int64
}

func NewHandler(
	conversation input.ConversationUseCase,
	events input.EventUseCase,
	team input.TeamUseCase,
	directory input.DirectoryUseCase,
	registry *application.DepartmentRegistry,
	courier output.Courier,
	tr output.T,
	adminUserID int64,
) *Handler {
	return &Handler{
		conversation: conversation,
		events:       events,
		team:         team,
		directory:    directory,
		registry:     registry,
		courier:      courier,
		tr:           tr,
		adminUserID:  adminUserID,
	}
}

func (h *Handler) Handle(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		h.handleCommand(ctx, msg)
		return
	}

	reply, err := h.conversation.HandleText(ctx, msg.From.ID, msg.Chat.ID, msg.Text)
	if err != nil {
		log.Error().Err(err).Int64("user_id", msg.From.ID).Msg("conversation step failed")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
		return
	}
	if reply != "" {
		h.reply(ctx, msg.Chat.ID, reply)
	}
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.handleStart(ctx, msg)
	case "help":
		h.handleHelp(ctx, msg)
	case "add_marketing":
		h.handleAddMarketing(ctx, msg)
	case "remove_marketing":
		h.handleRemoveMarketing(ctx, msg)
	case "list_marketing":
		h.handleListMarketing(ctx, msg)
	case "list":
		h.handleList(ctx, msg)
	case "register":
		h.handleRegister(ctx, msg)
	case "create":
		h.handleCreate(ctx, msg)
	case "list_events":
		h.handleListEvents(ctx, msg)
	case "capture_chat_id":
		h.handleCaptureChatID(ctx, msg)
	}
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	if err := h.courier.SendMessage(ctx, chatID, text); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send reply")
	}
}

func (h *Handler) isAdmin(msg *tgbotapi.Message) bool {
	return msg.From.ID == h.adminUserID
}

func (h *Handler) departmentList() string {
	return strings.Join(h.registry.Names(), ", ")
}
