package cli

import (
	"time"

	"github.com/spf13/cobra"

	"teamplay/internal/config"
	"teamplay/internal/domain"
	"teamplay/internal/repository/sqlite"
	"teamplay/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "teamplay",
		Short: "A Telegram bot for shared team tasks",
		Long: `Teamplay is a Telegram bot that lets a team collect, categorize and
export shared tasks, backed by a local SQLite database.

EXAMPLES:
  teamplay serve                           # Run the bot (needs TEAMPLAY_BOT_TOKEN)
  teamplay list                            # Print the grouped task list
  teamplay export > tasks.csv              # Export all tasks as CSV

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults.
  A .env file in the working directory is read first, the way the bot's
  original deployment expects.

    TEAMPLAY_BOT_TOKEN                     Telegram bot token (required for serve)
    TEAMPLAY_DB_DIR                        Database directory (default: ~/.teamplay)
    TEAMPLAY_DB_FILENAME                   Database filename (default: teamplay.db)
    TEAMPLAY_CATEGORIES                    Comma-separated category list
    TEAMPLAY_DEFAULT_CATEGORY              Fallback category (default: default-personal)
    TEAMPLAY_CHUNK_LIMIT                   Message chunk size (default: 4000)
    TEAMPLAY_SESSION_TTL                   Abandoned-session reset TTL (default: 1h)
    TEAMPLAY_DEV                           Development logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration override flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TEAMPLAY_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TEAMPLAY_DB_FILENAME)")
	flags.Int("chunk-limit", 0, "Message chunk size limit (overrides TEAMPLAY_CHUNK_LIMIT)")
	flags.Duration("session-ttl", 0, "Abandoned-session reset TTL (overrides TEAMPLAY_SESSION_TTL)")
	flags.Bool("dev", false, "Development logging (overrides TEAMPLAY_DEV)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(newServeCommand(r))
	r.cmd.AddCommand(newListCommand(r))
	r.cmd.AddCommand(newExportCommand(r))
}

// loadConfig loads configuration and applies flag overrides
func (r *RootCommand) loadConfig() error {
	overrides := &config.ConfigOverrides{}
	flags := r.cmd.PersistentFlags()

	if flags.Changed("db-dir") {
		value, _ := flags.GetString("db-dir")
		overrides.DBDir = &value
	}
	if flags.Changed("db-filename") {
		value, _ := flags.GetString("db-filename")
		overrides.DBFilename = &value
	}
	if flags.Changed("chunk-limit") {
		value, _ := flags.GetInt("chunk-limit")
		overrides.ChunkLimit = &value
	}
	if flags.Changed("session-ttl") {
		value, _ := flags.GetDuration("session-ttl")
		overrides.SessionTTL = &value
	}
	if flags.Changed("dev") {
		value, _ := flags.GetBool("dev")
		overrides.Development = &value
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return err
	}

	r.config = cfg
	return nil
}

// openServices opens the repository and builds the services every command
// needs. The caller must Close the repository.
func (r *RootCommand) openServices() (sqlite.Repository, services.TaskService, services.ListingService, error) {
	repo, err := config.CreateRepository(r.config)
	if err != nil {
		return nil, nil, nil, err
	}

	tasks := services.NewTaskService(repo,
		r.config.Tasks.Categories,
		r.config.Tasks.DefaultCategory,
		r.config.Tasks.TextMaxLength)

	listing := services.NewListingService(
		domain.DefaultStatusLabels(),
		r.config.Display.ChunkLimit,
		r.config.Display.TimeFormat)

	return repo, tasks, listing, nil
}

// getAppTimeout bounds non-interactive commands
func (r *RootCommand) getAppTimeout() time.Duration {
	return r.config.GetQueryTimeout()
}
