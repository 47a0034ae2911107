package telegram

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"cateringbot/internal/domain"
	"cateringbot/pkg/markdown"
)

var usernamePattern = regexp.MustCompile(`^@(\w+)$`)

// parseUsername extracts the bare username from an "@handle" argument.
func parseUsername(arg string) (string, bool) {
	m := usernamePattern.FindStringSubmatch(strings.TrimSpace(arg))
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (h *Handler) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if registered := h.registry.DepartmentsOf(chatID); len(registered) > 0 {
		h.reply(ctx, chatID, h.tr.T("", "WelcomeBack", map[string]any{
			"Departments": strings.Join(registered, ", "),
		}))
		return
	}

	if err := h.conversation.BeginRegistration(ctx, msg.From.ID); err != nil {
		log.Error().Err(err).Int64("user_id", msg.From.ID).Msg("failed to begin registration")
		h.reply(ctx, chatID, h.tr.T("", "StartError", nil))
		return
	}
	h.reply(ctx, chatID, h.tr.T("", "WelcomeNew", map[string]any{
		"Departments": h.departmentList(),
	}))
}

func (h *Handler) handleHelp(ctx context.Context, msg *tgbotapi.Message) {
	h.reply(ctx, msg.Chat.ID, h.tr.T("", "Help", map[string]any{
		"Departments": h.departmentList(),
	}))
}

func (h *Handler) handleAddMarketing(ctx context.Context, msg *tgbotapi.Message) {
	username, ok := parseUsername(msg.CommandArguments())
	if !ok {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UsageAddMarketing", nil))
		return
	}
	if err := h.team.Add(ctx, username); err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to add marketing member")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
		return
	}
	h.reply(ctx, msg.Chat.ID, h.tr.T("", "MarketingAdded", map[string]any{"Username": username}))
}

func (h *Handler) handleRemoveMarketing(ctx context.Context, msg *tgbotapi.Message) {
	username, ok := parseUsername(msg.CommandArguments())
	if !ok {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UsageRemoveMarketing", nil))
		return
	}
	if err := h.team.Remove(ctx, username); err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to remove marketing member")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
		return
	}
	h.reply(ctx, msg.Chat.ID, h.tr.T("", "MarketingRemoved", map[string]any{"Username": username}))
}

func (h *Handler) handleListMarketing(ctx context.Context, msg *tgbotapi.Message) {
	members, err := h.team.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list marketing team")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
		return
	}
	if len(members) == 0 {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "MarketingEmpty", nil))
		return
	}
	for i, m := range members {
		members[i] = "@" + m
	}
	h.reply(ctx, msg.Chat.ID, h.tr.T("", "MarketingList", map[string]any{
		"Members": strings.Join(members, "\n"),
	}))
}

func (h *Handler) handleList(ctx context.Context, msg *tgbotapi.Message) {
	if !h.isAdmin(msg) {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "AdminOnlyList", nil))
		return
	}
	department := strings.TrimSpace(msg.CommandArguments())
	if department == "" {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UsageList", nil))
		return
	}
	if !h.registry.Valid(department) {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "DeptInvalid", map[string]any{
			"Departments": h.departmentList(),
		}))
		return
	}
	chats := h.registry.Members(department)
	if len(chats) == 0 {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "DeptEmpty", map[string]any{"Department": department}))
		return
	}
	lines := make([]string, len(chats))
	for i, id := range chats {
		lines[i] = fmt.Sprintf("%d", id)
	}
	h.reply(ctx, msg.Chat.ID, h.tr.T("", "DeptUsers", map[string]any{
		"Department": department,
		"Users":      strings.Join(lines, "\n"),
	}))
}

func (h *Handler) handleRegister(ctx context.Context, msg *tgbotapi.Message) {
	if !h.isAdmin(msg) {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "AdminOnlyRegister", nil))
		return
	}
	args := strings.Fields(msg.CommandArguments())
	if len(args) != 2 {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UsageRegister", nil))
		return
	}
	department := args[0]
	username, ok := parseUsername(args[1])
	if !ok {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UsageRegister", nil))
		return
	}

	added, err := h.directory.Assign(ctx, department, username)
	switch {
	case errors.Is(err, domain.ErrUnknownDepartment):
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "DeptInvalid", map[string]any{
			"Departments": h.departmentList(),
		}))
	case errors.Is(err, domain.ErrChatNotFound):
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UserNotCaptured", map[string]any{"Username": username}))
	case err != nil:
		log.Error().Err(err).Str("username", username).Str("department", department).Msg("failed to register user")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
	case added:
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UserRegistered", map[string]any{
			"Username": username, "Department": department,
		}))
	default:
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UserAlreadyRegistered", map[string]any{
			"Username": username, "Department": department,
		}))
	}
}

func (h *Handler) handleCreate(ctx context.Context, msg *tgbotapi.Message) {
	username := msg.From.UserName
	if username == "" {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UsernameRequired", nil))
		return
	}
	member, err := h.team.IsMember(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to check marketing membership")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
		return
	}
	if !member {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "MarketingOnly", nil))
		return
	}
	if err := h.conversation.BeginCreation(ctx, msg.From.ID); err != nil {
		log.Error().Err(err).Int64("user_id", msg.From.ID).Msg("failed to begin event creation")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
		return
	}
	h.reply(ctx, msg.Chat.ID, h.tr.T("", "CreateWelcome", nil))
}

func (h *Handler) handleListEvents(ctx context.Context, msg *tgbotapi.Message) {
	events, err := h.events.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list events")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
		return
	}
	if len(events) == 0 {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "NoEvents", nil))
		return
	}

	var b strings.Builder
	b.WriteString("📅 Upcoming Events:\n")
	for _, ev := range events {
		b.WriteString("\n")
		fmt.Fprintf(&b, "*Event:* %s\n", markdown.Escape(ev.EventName))
		fmt.Fprintf(&b, "*Date:* %s\n", ev.EventDate)
		fmt.Fprintf(&b, "*Time:* %s\n", fallback(ev.EventTime))
		fmt.Fprintf(&b, "*Participants:* %d\n", ev.Participants)
		fmt.Fprintf(&b, "*Location:* %s\n", markdown.Escape(fallback(ev.Location)))
		if ev.Services != "" {
			fmt.Fprintf(&b, "*Services:* %s\n", markdown.Escape(ev.Services))
		}
	}
	if err := h.courier.SendMarkdown(ctx, msg.Chat.ID, b.String()); err != nil {
		log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("failed to send event list")
	}
}

func (h *Handler) handleCaptureChatID(ctx context.Context, msg *tgbotapi.Message) {
	username := msg.From.UserName
	if username == "" {
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "UsernameRequired", nil))
		return
	}
	if err := h.directory.Capture(ctx, username, msg.Chat.ID); err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to capture chat id")
		h.reply(ctx, msg.Chat.ID, h.tr.T("", "GenericError", nil))
		return
	}
	h.reply(ctx, msg.Chat.ID, h.tr.T("", "ChatCaptured", map[string]any{"Username": username}))
}

func fallback(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
