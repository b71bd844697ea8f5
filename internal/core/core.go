package core

import (
	"github.com/concordlib/concord/internal/config"
	"github.com/concordlib/concord/internal/core/app"
	do "github.com/samber/do/v2"
)

var Package = do.Package(
	do.Lazy[*app.App](NewApp),
)

// NewApp creates a new App instance with dependencies from the injector.
func NewApp(i do.Injector) (*app.App, error) {
	cfg := do.MustInvoke[*config.Config](i)
	dir := do.MustInvoke[app.Directory](i)

	return app.NewApp(cfg, dir)
}
