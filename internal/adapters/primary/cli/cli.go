package cli

import (
	"github.com/concordlib/concord/internal/adapters/primary/cli/commands"
	"github.com/concordlib/concord/internal/config"
	"github.com/concordlib/concord/internal/core/app"
	"github.com/concordlib/concord/internal/format/ascii"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Command creates and returns the root CLI command.
func Command(i do.Injector) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Long: `A CLI tool for resolving Concord entity references.`,
	}

	appInstance := do.MustInvoke[*app.App](i)
	cfg := do.MustInvoke[*config.Config](i)
	formatter := do.MustInvoke[*ascii.Formatter](i)

	cmd.AddCommand(
		commands.User(cfg, appInstance, formatter),
		commands.Member(cfg, appInstance, formatter),
		commands.Roster(cfg, appInstance, formatter),
	)

	return cmd, nil
}
