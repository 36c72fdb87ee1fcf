package level

import (
	"context"
	"fmt"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levelFS(n int) (fstest.MapFS, []string) {
	fsys := fstest.MapFS{}
	names := make([]string, 0, n)
	for i := range n {
		name := fmt.Sprintf("levels/%02d.yaml", i)
		fsys[name] = &fstest.MapFile{Data: []byte(fmt.Sprintf("name: level-%d\nseed: %d\n", i, i+1))}
		names = append(names, name)
	}
	return fsys, names
}

func TestLoadAll(t *testing.T) {
	fsys, names := levelFS(10)

	levels, err := LoadAll(context.Background(), fsys, names...)
	require.NoError(t, err)
	require.Len(t, levels, len(names))
	for i, lvl := range levels {
		assert.Equal(t, fmt.Sprintf("level-%d", i), lvl.Name)
		assert.Equal(t, uint64(i+1), lvl.Seed)
	}
}

func TestLoadAllErrors(t *testing.T) {
	fsys, names := levelFS(3)
	fsys["levels/bad.yaml"] = &fstest.MapFile{Data: []byte("name: bad\nphysics:\n  bullet_speed: -1\n")}

	_, err := LoadAll(context.Background(), fsys, append(names, "levels/bad.yaml")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPhysics)
	assert.Contains(t, err.Error(), "levels/bad.yaml")

	_, err = LoadAll(context.Background(), fsys, "levels/missing.yaml")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LoadAll(ctx, fsys, names...)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadAllEmpty(t *testing.T) {
	levels, err := LoadAll(context.Background(), fstest.MapFS{})
	require.NoError(t, err)
	assert.Empty(t, levels)
}
