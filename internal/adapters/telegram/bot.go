package telegram

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"cateringbot/internal/application"
	"cateringbot/internal/config"
	"cateringbot/internal/infrastructure/i18n"
	"cateringbot/internal/infrastructure/pdf"
	"cateringbot/internal/ports/output"
)

// Bot is the Telegram adapter.
type Bot struct {
	api     *tgbotapi.BotAPI
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	registry *application.DepartmentRegistry,
	eventRepo output.EventRepository,
	stateStore output.StateStore,
	departmentRepo output.DepartmentRepository,
	marketingRepo output.MarketingRepository,
	chatDirectory output.ChatDirectory,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram session: %w", err)
	}

	courier := NewCourier(api)
	tr := i18n.NewTranslator("en")
	renderer := pdf.NewRenderer(cfg.AssetsDir, cfg.PDFOutputDir)
	dispatcher := application.NewDispatcher(courier)

	events := application.NewEventService(eventRepo, renderer, courier, dispatcher, registry)
	conversation := application.NewConversationService(stateStore, departmentRepo, registry, events, tr)
	team := application.NewTeamService(marketingRepo)
	directory := application.NewDirectoryService(chatDirectory, departmentRepo, registry)

	handler := NewHandler(conversation, events, team, directory, registry, courier, tr, cfg.AdminUserID)

	return &Bot{
		api:     api,
		config:  cfg,
		handler: handler,
	}, nil
}

var botCommands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Start the bot and see options"},
	{Command: "help", Description: "Show available commands"},
	{Command: "add_marketing", Description: "Add a user to the marketing team"},
	{Command: "remove_marketing", Description: "Remove a user from the marketing team"},
	{Command: "list_marketing", Description: "List all marketing team members"},
	{Command: "list", Description: "List users in a department (Admin only)"},
	{Command: "register", Description: "Register a user to a department (Admin only)"},
	{Command: "create", Description: "Create a new catering event (Marketing only)"},
	{Command: "list_events", Description: "List all upcoming catering events"},
	{Command: "capture_chat_id", Description: "Let the bot record your chat id"},
}

// Start runs the long-polling loop until interrupted. Each update is handled
// on its own goroutine so one user's conversation never blocks another's.
func (b *Bot) Start(ctx context.Context) error {
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		log.Warn().Err(err).Msg("failed to register bot commands")
	}
	log.Info().Str("account", b.api.Self.UserName).Msg("bot online")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			msg := update.Message
			if msg == nil || msg.Text == "" || msg.From == nil {
				continue
			}
			go b.handler.Handle(ctx, msg)
		case <-stop:
			b.api.StopReceivingUpdates()
			return nil
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		}
	}
}
