// Package assets turns event image references into renderable swatches.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	_ "golang.org/x/image/webp"
)

// ErrNotImage reports a reference whose contents are not a decodable image.
var ErrNotImage = errors.New("not an image")

const (
	// DefaultColumns is the palette width used when none is configured.
	DefaultColumns = 8
	defaultLimit   = 4
)

// Asset describes a resolved image reference.
type Asset struct {
	URI     string
	Path    string
	Kind    string
	Width   int
	Height  int
	Palette []color.NRGBA
	Remote  bool
}

// Resolver reads local images relative to BaseDir. Remote references are
// accepted as-is without any network access.
type Resolver struct {
	BaseDir string
	Columns int
	Limit   int
}

// NewResolver returns a resolver for images next to the catalog file.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{BaseDir: baseDir, Columns: DefaultColumns, Limit: defaultLimit}
}

// Resolve loads a single reference.
func (r *Resolver) Resolve(ctx context.Context, uri string) (Asset, error) {
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return Asset{}, fmt.Errorf("empty reference: %w", ErrNotImage)
	}
	if isRemote(uri) {
		return Asset{URI: uri, Kind: "remote", Remote: true}, nil
	}
	path := r.localPath(uri)
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, fmt.Errorf("read image %s: %w", uri, err)
	}
	if !filetype.IsImage(data) {
		return Asset{}, fmt.Errorf("%s: %w", uri, ErrNotImage)
	}
	kind, _ := filetype.Match(data)
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return Asset{}, fmt.Errorf("decode image %s: %w", uri, err)
	}
	bounds := img.Bounds()
	return Asset{
		URI:     uri,
		Path:    path,
		Kind:    kind.Extension,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Palette: Palette(img, r.columns()),
	}, nil
}

// ResolveAll resolves a batch of working-set indices concurrently. Failed
// entries are left out of the result and their errors combined.
func (r *Resolver) ResolveAll(ctx context.Context, refs map[int]string) (map[int]Asset, error) {
	out := make(map[int]Asset, len(refs))
	if len(refs) == 0 {
		return out, nil
	}
	var (
		mu   sync.Mutex
		errs error
		g    errgroup.Group
	)
	g.SetLimit(r.limit())
	for index, uri := range refs {
		index, uri := index, uri
		g.Go(func() error {
			asset, err := r.Resolve(ctx, uri)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("asset %d: %w", index, err))
				return nil
			}
			out[index] = asset
			return nil
		})
	}
	_ = g.Wait()
	return out, errs
}

// Palette downsamples img to a single row of columns colours.
func Palette(img image.Image, columns int) []color.NRGBA {
	if columns <= 0 {
		columns = DefaultColumns
	}
	small := imaging.Resize(img, columns, 1, imaging.Box)
	out := make([]color.NRGBA, columns)
	for x := range out {
		out[x] = small.NRGBAAt(x, 0)
	}
	return out
}

// Hex formats c as a #rrggbb string.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (r *Resolver) localPath(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if filepath.IsAbs(path) || r.BaseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(r.BaseDir, path)
}

func (r *Resolver) columns() int {
	if r.Columns <= 0 {
		return DefaultColumns
	}
	return r.Columns
}

func (r *Resolver) limit() int {
	if r.Limit <= 0 {
		return defaultLimit
	}
	return r.Limit
}

func isRemote(uri string) bool {
	lower := strings.ToLower(uri)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
