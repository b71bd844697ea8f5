package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/concordlib/concord/internal/config"
	"github.com/concordlib/concord/internal/core/app"
	"github.com/concordlib/concord/internal/core/domain"
	"github.com/concordlib/concord/internal/format/ascii"
	"github.com/concordlib/concord/internal/log"
)

// errNoMatch reports a routine resolution miss to the CLI user.
var errNoMatch = errors.New("no matching entity found")

// User creates the user resolution command.
func User(cfg *config.Config, appInstance *app.App, formatter *ascii.Formatter) *cobra.Command {
	var guildID uint64
	var exact, openProfile bool

	cmd := &cobra.Command{
		Use:   "user <reference>",
		Short: "Resolve a reference to a global user",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return resolveUser(cfg, appInstance, formatter, args[0], guildID, exact, openProfile)
		},
	}

	cmd.Flags().Uint64Var(&guildID, "guild", 0, "guild scope for roster matching")
	cmd.Flags().BoolVar(&exact, "exact", false, "require an exact username match instead of fuzzy matching")
	cmd.Flags().BoolVar(&openProfile, "open", false, "open the resolved profile in a browser")

	return cmd
}

// Member creates the member resolution command.
func Member(cfg *config.Config, appInstance *app.App, formatter *ascii.Formatter) *cobra.Command {
	var guildID uint64
	var exact, openProfile bool

	cmd := &cobra.Command{
		Use:   "member <reference>",
		Short: "Resolve a reference to a guild member",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return resolveMember(cfg, appInstance, formatter, args[0], guildID, exact, openProfile)
		},
	}

	cmd.Flags().Uint64Var(&guildID, "guild", 0, "guild to resolve the member in (required)")
	cmd.Flags().BoolVar(&exact, "exact", false, "require an exact username match instead of fuzzy matching")
	cmd.Flags().BoolVar(&openProfile, "open", false, "open the resolved profile in a browser")
	_ = cmd.MarkFlagRequired("guild")

	return cmd
}

func resolveUser(
	cfg *config.Config,
	appInstance *app.App,
	formatter *ascii.Formatter,
	token string,
	guildID uint64,
	exact, openProfile bool,
) error {
	ctx := context.Background()
	opts := app.ResolveOptions{
		GuildID:           domain.Snowflake(guildID),
		ExactUsernameOnly: exact,
	}

	var user *domain.User
	err := log.WithSpinner("Resolving user...", func() error {
		resolved, ok, err := appInstance.ResolveUser(ctx, token, opts)
		if err != nil {
			return fmt.Errorf("failed to resolve user: %w", err)
		}
		if !ok {
			return errNoMatch
		}

		user = resolved

		return nil
	})
	if err != nil {
		return err
	}

	url := profileURL(cfg, user.ID)
	formatted, err := formatter.FormatUser(user, url)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(formatted)

	if openProfile {
		return openURL(url)
	}

	return nil
}

func resolveMember(
	cfg *config.Config,
	appInstance *app.App,
	formatter *ascii.Formatter,
	token string,
	guildID uint64,
	exact, openProfile bool,
) error {
	ctx := context.Background()
	opts := app.ResolveOptions{
		GuildID:           domain.Snowflake(guildID),
		ExactUsernameOnly: exact,
	}

	var member *domain.Member
	err := log.WithSpinner("Resolving member...", func() error {
		resolved, ok, err := appInstance.ResolveMember(ctx, token, opts)
		if err != nil {
			return fmt.Errorf("failed to resolve member: %w", err)
		}
		if !ok {
			return errNoMatch
		}

		member = resolved

		return nil
	})
	if err != nil {
		return err
	}

	url := profileURL(cfg, member.UserID)
	formatted, err := formatter.FormatMember(member, url)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(formatted)

	if openProfile {
		return openURL(url)
	}

	return nil
}

func profileURL(cfg *config.Config, id domain.Snowflake) string {
	return fmt.Sprintf("%s/users/%s/profile", cfg.BaseURL, id)
}

func openURL(url string) error {
	if err := open.Run(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	return nil
}
