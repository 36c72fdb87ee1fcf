package level

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Load decodes a YAML level over Default and validates it.
// Unknown keys are rejected.
func Load(r io.Reader) (*Level, error) {
	lvl := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lvl); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidLevel, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func LoadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lvl, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// LoadFS loads the level stored under name in fsys
func LoadFS(fsys fs.FS, name string) (*Level, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lvl, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lvl, nil
}

// LoadAll loads every named level concurrently. The result keeps the order
// of names. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, fsys fs.FS, names ...string) ([]*Level, error) {
	levels := make([]*Level, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lvl, err := LoadFS(fsys, name)
			if err != nil {
				return err
			}
			levels[i] = lvl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return levels, nil
}
