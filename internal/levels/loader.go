// Package levels provides the level catalogue: the bundled core levels,
// directory loaders and remote level repositories, grouped into packs.
// This package depends on game but game does not depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/l1t/internal/game"
	"github.com/vovakirdan/l1t/internal/levels/formats"
)

// SourceKind tells where a level came from.
type SourceKind string

const (
	SourceCore SourceKind = "core"
	SourceFile SourceKind = "file"
	SourceURL  SourceKind = "url"
)

// Source locates a level: a core file name, a file path or a URL.
type Source struct {
	Kind     SourceKind
	Location string
}

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Location
}

// Info describes a level without its grid.
type Info struct {
	ID          string
	Pack        string
	Name        string
	Author      string
	Description string
	Source      Source
}

// Title returns the display name, falling back to the ID.
func (i Info) Title() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ID
}

// Level is a parsed level ready to play. Board is freshly parsed on every
// load, so callers may hand it to a session.
type Level struct {
	Info
	Board *game.Level
}

// Loader loads levels from a file system tree.
type Loader struct {
	fsys   fs.FS
	root   string // for messages and file sources
	kind   SourceKind
	pack   string
	logger *log.Logger
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{
		fsys: os.DirFS(root),
		root: root,
		kind: SourceFile,
	}
}

// NewFSLoader creates a loader over fsys, e.g. an embedded tree.
func NewFSLoader(fsys fs.FS, kind SourceKind) *Loader {
	return &Loader{fsys: fsys, root: ".", kind: kind}
}

// WithPack sets the pack ID stamped on loaded levels.
func (l *Loader) WithPack(pack string) *Loader {
	l.pack = pack
	return l
}

// WithLogger makes the loader report skipped files.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	l.logger = logger
	return l
}

// Root returns the directory the loader reads.
func (l *Loader) Root() string {
	return l.root
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic
// ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	err := l.walk(func(p string) {
		lvl, err := l.LoadFile(p)
		if err != nil {
			l.skip(p, err)
			return
		}
		levels = append(levels, lvl)
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// ReadAll returns the headers of every level file without parsing grids.
func (l *Loader) ReadAll() ([]Info, error) {
	var infos []Info
	err := l.walk(func(p string) {
		info, err := l.ReadInfo(p)
		if err != nil {
			l.skip(p, err)
			return
		}
		infos = append(infos, info)
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos, nil
}

// LoadFile loads a single level file. p is relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	board, err := formats.Parse(data, path.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	return Level{Info: l.info(p, board.Info), Board: board}, nil
}

// ReadInfo reads the header of a single level file.
func (l *Loader) ReadInfo(p string) (Info, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Info{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	header, err := formats.ReadHeader(data, path.Ext(p))
	if err != nil {
		return Info{}, fmt.Errorf("reading header %s: %w", p, err)
	}
	return l.info(p, header), nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	var match string
	err := l.walk(func(p string) {
		if match == "" && levelID(p) == id {
			match = p
		}
	})
	if err != nil {
		return Level{}, err
	}
	if match == "" {
		return Level{}, fmt.Errorf("level not found: %s", id)
	}
	return l.LoadFile(match)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	infos, err := l.ReadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids, nil
}

func (l *Loader) walk(visit func(p string)) error {
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.IsSupported(path.Ext(p)) {
			return nil
		}
		visit(p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %s: %w", l.root, err)
	}
	return nil
}

func (l *Loader) info(p string, header game.Info) Info {
	loc := p
	if l.kind == SourceFile {
		loc = filepath.Join(l.root, filepath.FromSlash(p))
	}
	return Info{
		ID:          levelID(p),
		Pack:        l.pack,
		Name:        header.Name,
		Author:      header.Author,
		Description: header.Description,
		Source:      Source{Kind: l.kind, Location: loc},
	}
}

func levelID(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}

func (l *Loader) skip(p string, err error) {
	if l.logger != nil {
		l.logger.Warn("skipping level file", "path", p, "error", err)
	}
}

// LoadPath loads a level file from disk outside of any pack.
func LoadPath(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	board, err := formats.Parse(data, filepath.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	base := filepath.Base(p)
	return Level{
		Info: Info{
			ID:          strings.TrimSuffix(base, filepath.Ext(base)),
			Name:        board.Info.Name,
			Author:      board.Info.Author,
			Description: board.Info.Description,
			Source:      Source{Kind: SourceFile, Location: p},
		},
		Board: board,
	}, nil
}
