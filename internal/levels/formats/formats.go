// Package formats provides pluggable level file format parsers.
package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vovakirdan/l1t/internal/game"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Name        string   `yaml:"name"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Grid        []string `yaml:"grid"` // wall ring included
}

// Parse routes data to the parser registered for ext.
func Parse(data []byte, ext string) (*game.Level, error) {
	switch strings.ToLower(ext) {
	case ".l1t", ".txt", "":
		return ParseText(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// ParseText parses the native three header lines plus grid format.
func ParseText(data []byte) (*game.Level, error) {
	return game.Parse(string(data))
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (*game.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	info := game.Info{
		Name:        strings.TrimSpace(yl.Name),
		Author:      strings.TrimSpace(yl.Author),
		Description: strings.TrimSpace(yl.Description),
	}
	return game.ParseGrid(info, yl.Grid)
}

// ReadHeader returns the name, author and description without parsing the
// grid.
func ReadHeader(data []byte, ext string) (game.Info, error) {
	switch strings.ToLower(ext) {
	case ".l1t", ".txt", "":
		return readTextHeader(data)
	case ".yaml", ".yml":
		var yl YAMLLevel
		if err := yaml.Unmarshal(data, &yl); err != nil {
			return game.Info{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
		return game.Info{
			Name:        strings.TrimSpace(yl.Name),
			Author:      strings.TrimSpace(yl.Author),
			Description: strings.TrimSpace(yl.Description),
		}, nil
	default:
		return game.Info{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func readTextHeader(data []byte) (game.Info, error) {
	sc := bufio.NewScanner(bytes.NewReader(bytes.TrimLeft(data, " \t\r\n")))
	var header [3]string
	for i := range header {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return game.Info{}, err
			}
			return game.Info{}, game.ErrTooFewLines
		}
		header[i] = strings.TrimSpace(sc.Text())
	}
	return game.Info{Name: header[0], Author: header[1], Description: header[2]}, nil
}

// EncodeYAML renders a level in the YAML format.
func EncodeYAML(l *game.Level) ([]byte, error) {
	text := game.Format(l)
	lines := strings.Split(text, "\n")
	yl := YAMLLevel{
		Name:        l.Info.Name,
		Author:      l.Info.Author,
		Description: l.Info.Description,
		Grid:        lines[3:],
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".l1t", ".txt", ".yaml", ".yml"}
}

// IsSupported reports whether ext names a supported format.
func IsSupported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
