// Package adapter provides I/O adapters for loading and saving levels.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
	m "sequence.dev/pkg/sequence/internal/model"
)

// LevelStore reads and writes level files.
type LevelStore interface {
	Load(ctx context.Context, path string) ([]m.Level, error)
	Save(ctx context.Context, path string, levels []m.Level) error
}

type levelFile struct {
	Levels []levelEntry `yaml:"levels"`
}

type levelEntry struct {
	ID       string        `yaml:"id,omitempty"`
	Name     string        `yaml:"name"`
	GridSize int           `yaml:"grid_size"`
	Nodes    map[int][]int `yaml:"nodes"`
}

// YAMLLevelStore stores levels as YAML documents on the local filesystem.
type YAMLLevelStore struct {
	levelOptions []m.LevelOption
}

// NewYAMLLevelStore creates a YAML level store. The options are applied
// to every level it decodes, e.g. to inject an ID generator.
func NewYAMLLevelStore(opts ...m.LevelOption) *YAMLLevelStore {
	return &YAMLLevelStore{levelOptions: opts}
}

// Load reads all levels from the YAML file at path.
func (s *YAMLLevelStore) Load(ctx context.Context, path string) ([]m.Level, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level file: %w", err)
	}
	defer f.Close()

	levels, err := s.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded level file", "path", path, "levels", len(levels))

	return levels, nil
}

// Decode parses levels from r.
func (s *YAMLLevelStore) Decode(r io.Reader) ([]m.Level, error) {
	var lf levelFile

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&lf); err != nil {
		if errors.Is(err, io.EOF) {
			return []m.Level{}, nil
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	levels := make([]m.Level, 0, len(lf.Levels))

	for i, entry := range lf.Levels {
		nodes := make(map[int]m.GridPosition, len(entry.Nodes))

		for number, coords := range entry.Nodes {
			if len(coords) != 2 {
				return nil, fmt.Errorf("level %d (%s): node %d: want [row, col], got %v", i+1, entry.Name, number, coords)
			}

			nodes[number] = m.Pos(coords[0], coords[1])
		}

		opts := append([]m.LevelOption{}, s.levelOptions...)
		if entry.ID != "" {
			opts = append(opts, m.WithID(entry.ID))
		}

		levels = append(levels, m.NewLevel(entry.Name, entry.GridSize, nodes, opts...))
	}

	return levels, nil
}

// Save writes levels to path, creating parent directories as needed.
func (s *YAMLLevelStore) Save(ctx context.Context, path string, levels []m.Level) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf, levels); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create level dir: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write level file: %w", err)
	}

	slog.Debug("saved level file", "path", path, "levels", len(levels))

	return nil
}

// Encode writes levels to w as YAML.
func (s *YAMLLevelStore) Encode(w io.Writer, levels []m.Level) error {
	lf := levelFile{Levels: make([]levelEntry, 0, len(levels))}

	for _, level := range levels {
		entry := levelEntry{
			ID:       level.ID,
			Name:     level.Name,
			GridSize: level.GridSize,
			Nodes:    make(map[int][]int, len(level.Nodes)),
		}

		for number, pos := range level.Nodes {
			entry.Nodes[number] = []int{pos.Row, pos.Col}
		}

		lf.Levels = append(lf.Levels, entry)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(lf); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// SortedPaths returns a sorted copy of paths with duplicates removed.
func SortedPaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}
		out = append(out, p)
	}

	sort.Strings(out)

	return out
}
