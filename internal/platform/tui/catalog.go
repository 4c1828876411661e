package tui

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/l1t/internal/levels"
	"github.com/vovakirdan/l1t/internal/registry"
)

// CatalogPack is one pack as listed by the menu.
type CatalogPack struct {
	Pack   levels.Pack
	Levels []levels.Info
	Err    error // listing failed; the pack is shown without levels
}

// BuildCatalog lists the levels of every registered pack, in registry order.
// A pack that cannot be listed is kept with its error so the menu can say so.
func BuildCatalog(ctx context.Context, logger *log.Logger) []CatalogPack {
	infos := registry.List()
	catalog := make([]CatalogPack, 0, len(infos))

	for _, info := range infos {
		pack, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		lvls, err := pack.Levels(ctx)
		if err != nil && logger != nil {
			logger.Warn("could not list levels", "pack", info.ID, "error", err)
		}
		catalog = append(catalog, CatalogPack{Pack: pack, Levels: lvls, Err: err})
	}
	return catalog
}
