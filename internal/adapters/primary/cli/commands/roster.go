package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/concordlib/concord/internal/config"
	"github.com/concordlib/concord/internal/core/app"
	"github.com/concordlib/concord/internal/core/domain"
	"github.com/concordlib/concord/internal/format/ascii"
	"github.com/concordlib/concord/internal/log"
)

// Roster creates the guild roster listing command.
func Roster(_ *config.Config, appInstance *app.App, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "roster <guild-id>",
		Short: "Preload and list a guild's member roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			guildID, err := domain.ParseSnowflake(args[0])
			if err != nil {
				return err
			}

			return showRoster(appInstance, formatter, guildID)
		},
	}
}

func showRoster(appInstance *app.App, formatter *ascii.Formatter, guildID domain.Snowflake) error {
	ctx := context.Background()

	err := log.WithSpinner("Fetching roster...", func() error {
		return appInstance.PreloadGuilds(ctx, []domain.Snowflake{guildID})
	})
	if err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}

	formatted, err := formatter.FormatRoster(guildID, appInstance.GuildRoster(guildID))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(formatted)

	return nil
}
