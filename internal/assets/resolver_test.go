package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, blue)
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestResolveLocalImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "strip.png")
	r := NewResolver(dir)
	r.Columns = 2

	asset, err := r.Resolve(context.Background(), "strip.png")
	require.NoError(t, err)
	assert.Equal(t, "png", asset.Kind)
	assert.Equal(t, 2, asset.Width)
	assert.Equal(t, 1, asset.Height)
	assert.False(t, asset.Remote)
	assert.Equal(t, filepath.Join(dir, "strip.png"), asset.Path)
	require.Len(t, asset.Palette, 2)
	assert.Equal(t, red, asset.Palette[0])
	assert.Equal(t, blue, asset.Palette[1])
}

func TestResolveFileURIAndAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "strip.png")
	r := NewResolver("/nowhere")
	abs := filepath.Join(dir, "strip.png")

	asset, err := r.Resolve(context.Background(), "file://"+abs)
	require.NoError(t, err)
	assert.Equal(t, abs, asset.Path)
	assert.Len(t, asset.Palette, DefaultColumns)
}

func TestResolveRemoteSkipsIO(t *testing.T) {
	r := NewResolver(t.TempDir())
	asset, err := r.Resolve(context.Background(), "https://example.org/a.jpg")
	require.NoError(t, err)
	assert.True(t, asset.Remote)
	assert.Empty(t, asset.Palette)
}

func TestResolveRejectsNonImages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("plain text"), 0o644))
	r := NewResolver(dir)

	_, err := r.Resolve(context.Background(), "notes.txt")
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = r.Resolve(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = r.Resolve(context.Background(), "missing.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewResolver("").Resolve(ctx, "https://example.org/a.jpg")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveAllKeepsSuccessesAndCombinesErrors(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png")
	writePNG(t, dir, "b.png")
	r := NewResolver(dir)
	r.Limit = 2

	got, err := r.ResolveAll(context.Background(), map[int]string{
		0: "a.png",
		1: "missing.png",
		2: "b.png",
		3: "https://example.org/c.jpg",
		4: "also-missing.png",
	})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Len(t, got, 3)
	assert.Contains(t, got, 0)
	assert.Contains(t, got, 2)
	assert.True(t, got[3].Remote)
	assert.NotContains(t, got, 1)
}

func TestResolveAllEmpty(t *testing.T) {
	got, err := NewResolver("").ResolveAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Hex(red))
	assert.Equal(t, "#0a0b0c", Hex(color.NRGBA{R: 10, G: 11, B: 12, A: 255}))
}
