package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"teamplay/internal/bot"
	"teamplay/internal/logging"
	"teamplay/internal/session"
)

// newServeCommand creates the serve subcommand that runs the bot
func newServeCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		Long:  "Start polling Telegram for updates and handle task commands until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(root)
		},
	}
}

func runServe(root *RootCommand) error {
	cfg := root.config

	if cfg.Bot.Token == "" {
		return fmt.Errorf("TEAMPLAY_BOT_TOKEN is not set; create a .env file or export it")
	}

	if err := logging.Init(cfg.Application.Development); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	repo, tasks, listing, err := root.openServices()
	if err != nil {
		return err
	}
	defer repo.Close()

	sessions := session.NewManager(tasks,
		cfg.Tasks.Categories,
		cfg.Tasks.DefaultCategory,
		cfg.Session.TTL)

	botInstance, err := bot.New(cfg, sessions, tasks, listing)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reset abandoned add flows in the background
	sweeper := session.NewSweeper(sessions, cfg.Session.SweepInterval)
	go sweeper.Start(ctx)

	if err := botInstance.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
