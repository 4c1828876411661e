package levels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/l1t/internal/levels/formats"
)

// maxLevelBytes caps a single downloaded document.
const maxLevelBytes = 1 << 20

// Repository is a remote level collection served over HTTP.
//
// GET URL returns the index {"levels":[{"source","name","author","description"}]};
// each level's text is served at URL + "/" + source.
type Repository struct {
	Name   string
	URL    string
	Client *http.Client
	Logger *log.Logger
}

// RepositoryLevel is one entry of a repository index.
type RepositoryLevel struct {
	Source      string `json:"source"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

type repositoryIndex struct {
	Levels []RepositoryLevel `json:"levels"`
}

// NewRepository creates a repository client with a bounded HTTP client.
func NewRepository(name, url string) *Repository {
	return &Repository{
		Name:   name,
		URL:    strings.TrimRight(url, "/"),
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Index fetches the level index.
func (r *Repository) Index(ctx context.Context) ([]Info, error) {
	body, err := r.get(ctx, r.URL)
	if err != nil {
		return nil, err
	}
	var idx repositoryIndex
	if err := json.Unmarshal(body, &idx); err != nil {
		return nil, fmt.Errorf("repository %s: decoding index: %w", r.Name, err)
	}

	infos := make([]Info, 0, len(idx.Levels))
	for _, lv := range idx.Levels {
		if lv.Source == "" {
			continue
		}
		infos = append(infos, Info{
			ID:          remoteID(lv.Source),
			Name:        lv.Name,
			Author:      lv.Author,
			Description: lv.Description,
			Source:      Source{Kind: SourceURL, Location: r.URL + "/" + lv.Source},
		})
	}
	if r.Logger != nil {
		r.Logger.Debug("fetched repository index", "repository", r.Name, "levels", len(infos))
	}
	return infos, nil
}

// Fetch downloads and parses the level behind info.
func (r *Repository) Fetch(ctx context.Context, info Info) (Level, error) {
	body, err := r.get(ctx, info.Source.Location)
	if err != nil {
		return Level{}, err
	}
	board, err := formats.Parse(body, path.Ext(info.Source.Location))
	if err != nil {
		return Level{}, fmt.Errorf("repository %s: parsing %s: %w", r.Name, info.ID, err)
	}
	return Level{Info: info, Board: board}, nil
}

func (r *Repository) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("repository %s: %w", r.Name, err)
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("repository %s: fetching %s: %w", r.Name, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("repository %s: fetching %s: unexpected status %s", r.Name, url, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLevelBytes))
	if err != nil {
		return nil, fmt.Errorf("repository %s: reading %s: %w", r.Name, url, err)
	}
	return body, nil
}

// remoteID derives a level ID from its source path.
func remoteID(source string) string {
	base := path.Base(source)
	return strings.TrimSuffix(base, path.Ext(base))
}
