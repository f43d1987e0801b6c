// Package tokens loads palettes and rule sets from declarative token files.
//
// Two formats are supported, selected by file extension: JSON and TOML. The
// file shape is a mapping of role name to color literal plus an ordered list
// of fg/bg/context rules. Parsing color literals is delegated to the oklch
// package; this package is purely a boundary adapter.
package tokens

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/filesystem"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/oklint-cli/oklint/palette"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
)

// File is the on-disk shape of a token file.
type File struct {
	// Palette maps role names to color literals in hex or oklch notation.
	Palette map[string]string `json:"palette" toml:"palette"`
	// Rules is the ordered list of pairings to audit.
	Rules []FileRule `json:"rules" toml:"rules"`
}

// FileRule is a single rule entry in a token file.
type FileRule struct {
	FG      string `json:"fg" toml:"fg"`
	BG      string `json:"bg" toml:"bg"`
	Context string `json:"context" toml:"context"`
}

// Document is a fully parsed and validated token file.
type Document struct {
	Palette *palette.Palette
	Rules   []palette.Rule
}

// Load reads and parses a token file from the virtualized filesystem.
func Load(path string) (*Document, error) {
	raw, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var file File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &file)
	case ".toml":
		err = toml.Unmarshal(raw, &file)
	default:
		return nil, &contrast.ConfigError{Reason: fmt.Sprintf("unsupported token file extension %q, expected .json or .toml", ext)}
	}
	if err != nil {
		return nil, fmt.Errorf("parse token file %s: %w", path, err)
	}

	return Decode(&file)
}

// Decode validates a raw token file into a Document. Roles are registered in
// lexical order so palette listing is deterministic regardless of the
// decoder's map ordering; rule order follows the file.
func Decode(file *File) (*Document, error) {
	if len(file.Palette) == 0 {
		return nil, &contrast.ConfigError{Reason: "token file declares no palette roles"}
	}

	p := palette.New()

	roles := make([]string, 0, len(file.Palette))
	for role := range file.Palette {
		roles = append(roles, role)
	}
	slices.Sort(roles)

	for _, role := range roles {
		c, err := oklch.Parse(file.Palette[role])
		if err != nil {
			return nil, fmt.Errorf("role %q: %w", role, err)
		}
		if err := p.Set(role, c); err != nil {
			return nil, err
		}
	}

	rules := make([]palette.Rule, 0, len(file.Rules))
	for i, r := range file.Rules {
		ctx, err := contrast.ParseContext(r.Context)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, palette.Rule{FG: r.FG, BG: r.BG, Context: ctx})
	}

	return &Document{Palette: p, Rules: rules}, nil
}
