package adapters

import (
	"github.com/concordlib/concord/internal/adapters/primary/cli"
	httpadapter "github.com/concordlib/concord/internal/adapters/primary/http"
	"github.com/concordlib/concord/internal/adapters/secondary/cache"
	"github.com/concordlib/concord/internal/adapters/secondary/repository/cached"
	"github.com/concordlib/concord/internal/adapters/secondary/repository/rest"
	"github.com/concordlib/concord/internal/adapters/secondary/transport"
	"github.com/concordlib/concord/internal/config"
	"github.com/concordlib/concord/internal/core/app"
	"github.com/concordlib/concord/internal/format/ascii"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var PrimaryPackage = do.Package(
	do.Lazy[*cobra.Command](cli.Command),
	do.Lazy[*httpadapter.Server](NewIngestServer),
	do.Lazy[*ascii.Formatter](NewFormatter),
)

// NewFormatter creates the CLI output formatter.
func NewFormatter(_ do.Injector) (*ascii.Formatter, error) {
	return ascii.NewFormatter(), nil
}

var SecondaryPackage = do.Package(
	do.Lazy[*zap.Logger](NewLogger),
	do.Lazy[*transport.Client](NewTransportClient),
	do.Lazy[*rest.Repository](NewRestRepository),
	do.Lazy[cache.Cache](NewCache),
	do.Lazy[app.Directory](NewDirectory),
)

// NewLogger creates the shared structured logger.
func NewLogger(_ do.Injector) (*zap.Logger, error) {
	return zap.NewProduction()
}

// NewTransportClient creates the low-level REST client.
func NewTransportClient(i do.Injector) (*transport.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*zap.Logger](i)

	return transport.New(transport.Config{
		BaseURL: cfg.BaseURL,
		Token:   cfg.Token,
		Logger:  logger,
	}), nil
}

// NewRestRepository creates the typed endpoint repository.
func NewRestRepository(i do.Injector) (*rest.Repository, error) {
	client := do.MustInvoke[*transport.Client](i)

	return rest.NewRepository(client), nil
}

// NewCache creates the identity cache.
func NewCache(_ do.Injector) (cache.Cache, error) {
	return cache.NewInMemoryCache(), nil
}

// NewDirectory creates the directory adapter that implements app.Directory.
// It layers the identity cache over the REST repository.
func NewDirectory(i do.Injector) (app.Directory, error) {
	remote := do.MustInvoke[*rest.Repository](i)
	cacheInstance := do.MustInvoke[cache.Cache](i)

	return cached.NewRepository(remote, cacheInstance), nil
}

// NewIngestServer creates the message-ingest HTTP server.
func NewIngestServer(i do.Injector) (*httpadapter.Server, error) {
	appInstance := do.MustInvoke[*app.App](i)
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*zap.Logger](i)

	return httpadapter.NewServer(cfg.IngestAddress, appInstance, logger), nil
}
