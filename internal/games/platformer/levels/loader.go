// Package levels provides level loading functionality for the platformer.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader errors.
var (
	ErrNoCoins     = errors.New("level has no coins")
	ErrNoLevels    = errors.New("no valid levels found")
	ErrNotFound    = errors.New("level not found")
	ErrDuplicateID = errors.New("duplicate level id")
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Plan     string
	Width    int
	Height   int
	Coins    int
	Metadata map[string]string
	FilePath string
}

// Parse builds a fresh simulation grid from the level plan.
// rng drives the coin wobble phases; nil uses a time-seeded source.
func (l *Level) Parse(rng *rand.Rand) (*core.Level, error) {
	return core.ParseLevel(l.Plan, rng)
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS fs.FS
}

// NewLoader creates a loader that reads levels from a directory.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root)}
}

// Builtin returns a loader for the level pack compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err) // embed pattern guarantees the directory
	}
	return &Loader{FS: sub}
}

// LoadAll recursively scans and loads all level files.
// Invalid files and repeated IDs are skipped; Validate reports them.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]bool)

	err := l.walk(func(p string) {
		level, err := l.LoadFile(p)
		if err != nil || seen[level.ID] {
			return
		}
		seen[level.ID] = true
		levels = append(levels, level)
	})
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file. The path is relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	grid, err := core.ParseLevel(parsed.Plan, rand.New(rand.NewSource(1)))
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", parsed.ID, err)
	}
	if grid.CountCoins() == 0 {
		return Level{}, fmt.Errorf("level %s: %w", parsed.ID, ErrNoCoins)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Plan:     parsed.Plan,
		Width:    grid.Width,
		Height:   grid.Height,
		Coins:    grid.CountCoins(),
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Problem describes one level file that cannot be played.
type Problem struct {
	Path string
	Err  error
}

func (p Problem) Error() string {
	return p.Path + ": " + p.Err.Error()
}

func (p Problem) Unwrap() error {
	return p.Err
}

// Report is the result of Validate.
type Report struct {
	Playable []string  // IDs of the levels that load, in walk order
	Problems []Problem // One entry per broken file
}

// Validate loads every level file and reports each one that is broken.
// The returned error is only set when the file system itself cannot be read.
func (l *Loader) Validate() (Report, error) {
	var report Report
	owners := make(map[string]string)

	err := l.walk(func(p string) {
		level, err := l.LoadFile(p)
		if err != nil {
			report.Problems = append(report.Problems, Problem{Path: p, Err: err})
			return
		}
		if first, ok := owners[level.ID]; ok {
			report.Problems = append(report.Problems, Problem{
				Path: p,
				Err:  fmt.Errorf("%w %q, already used by %s", ErrDuplicateID, level.ID, first),
			})
			return
		}
		owners[level.ID] = p
		report.Playable = append(report.Playable, level.ID)
	})
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

// walk calls fn for every file with a supported extension, in lexical order.
func (l *Loader) walk(fn func(p string)) error {
	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(path.Ext(p))) {
			fn(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking levels: %w", err)
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
