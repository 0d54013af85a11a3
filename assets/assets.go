package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/automoto/laundry-squadron/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// DefaultArena is the level loaded when none is named.
const DefaultArena = "arena"

type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// Names lists the embedded levels by stem, sorted.
func (l *LevelLoader) Names() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "levels/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob levels: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(m, "levels/"), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadArena parses the named embedded level.
func (l *LevelLoader) LoadArena(name string) (*leveldata.ArenaData, error) {
	arena, err := leveldata.LoadArena(l.fsys, "levels/"+name+".tmx")
	if err != nil {
		return nil, err
	}
	arena.Name = name
	return arena, nil
}
