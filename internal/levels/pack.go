package levels

import (
	"context"
	"fmt"
	"sync"
)

// CorePackID is the ID of the bundled pack.
const CorePackID = "core"

// Pack is a named collection of levels.
type Pack interface {
	// ID returns a unique identifier for this pack (e.g., "core", "dir:mine").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Levels lists the pack's levels in play order.
	Levels(ctx context.Context) ([]Info, error)

	// Load returns a freshly parsed level by ID.
	Load(ctx context.Context, id string) (Level, error)
}

// LoaderPack serves a pack from a Loader. It backs both the core pack and
// directory packs.
type LoaderPack struct {
	id     string
	title  string
	loader *Loader
}

// NewCorePack returns the bundled levels.
func NewCorePack() *LoaderPack {
	return &LoaderPack{id: CorePackID, title: "Core Levels", loader: CoreLoader()}
}

// NewDirPack serves every level file below dir.
func NewDirPack(name, dir string, loader *Loader) *LoaderPack {
	if loader == nil {
		loader = NewLoader(dir)
	}
	id := DirPackID(name)
	return &LoaderPack{id: id, title: fmt.Sprintf("Levels in %s", dir), loader: loader.WithPack(id)}
}

// DirPackID returns the pack ID of a configured level directory.
func DirPackID(name string) string {
	return "dir:" + name
}

func (p *LoaderPack) ID() string    { return p.id }
func (p *LoaderPack) Title() string { return p.title }

func (p *LoaderPack) Levels(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.loader.ReadAll()
}

func (p *LoaderPack) Load(ctx context.Context, id string) (Level, error) {
	if err := ctx.Err(); err != nil {
		return Level{}, err
	}
	return p.loader.LoadByID(id)
}

// RemotePack serves the levels of a Repository. The index is fetched once
// and cached; levels are downloaded on every Load.
type RemotePack struct {
	repo *Repository

	mu    sync.Mutex
	index []Info
}

// NewRemotePack wraps repo as a pack.
func NewRemotePack(repo *Repository) *RemotePack {
	return &RemotePack{repo: repo}
}

// RemotePackID returns the pack ID of a configured repository.
func RemotePackID(name string) string {
	return "repo:" + name
}

func (p *RemotePack) ID() string    { return RemotePackID(p.repo.Name) }
func (p *RemotePack) Title() string { return fmt.Sprintf("%s (%s)", p.repo.Name, p.repo.URL) }

func (p *RemotePack) Levels(ctx context.Context) ([]Info, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.index != nil {
		return p.index, nil
	}
	infos, err := p.repo.Index(ctx)
	if err != nil {
		return nil, err
	}
	for i := range infos {
		infos[i].Pack = p.ID()
	}
	p.index = infos
	return infos, nil
}

func (p *RemotePack) Load(ctx context.Context, id string) (Level, error) {
	infos, err := p.Levels(ctx)
	if err != nil {
		return Level{}, err
	}
	for _, info := range infos {
		if info.ID == id {
			return p.repo.Fetch(ctx, info)
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}
