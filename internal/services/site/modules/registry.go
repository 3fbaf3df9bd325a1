// Package modules assembles the site's feature modules.
package modules

import (
	"log"

	module "github.com/jppf-project/site/internal/services/site/module"
	"github.com/jppf-project/site/internal/services/site/modules/links"
	"github.com/jppf-project/site/internal/services/site/modules/public"
	"github.com/jppf-project/site/internal/services/site/modules/slideshow"
	"github.com/jppf-project/site/internal/services/site/storage"
)

// Dependencies carries the collaborators each module needs. Each field is
// typed as the narrow contract its consuming module defines.
type Dependencies struct {
	Directories   storage.LinkDirectoryOpener
	SnapshotReads bool
	Sessions      storage.SessionValueStore
	Deck          slideshow.Deck
	Health        public.Pinger
	Logger        *log.Logger
}

// Default returns the site's modules in mount order.
func Default(deps Dependencies) []module.Module {
	return []module.Module{
		public.New(deps.Health, deps.Logger),
		links.New(deps.Directories, links.Options{SnapshotReads: deps.SnapshotReads, Logger: deps.Logger}),
		slideshow.New(deps.Sessions, deps.Deck, deps.Logger),
	}
}
