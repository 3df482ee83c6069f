// Package asset decodes sprite sheets.
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io/fs"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
)

// Loader decodes sprite sheets from an fs.FS and caches them by path.
// Sheets are converted to *image.NRGBA so frames can be cut with SubImage.
type Loader struct {
	fsys  fs.FS
	cache map[string]*image.NRGBA

	// placeholders, when set, are used for sheets that do not exist
	placeholders *PlaceholderSet
}

// NewLoader creates a loader reading from dir
func NewLoader(dir string) *Loader {
	return NewFSLoader(os.DirFS(dir))
}

// NewFSLoader creates a loader reading from fsys. fsys may be nil, in
// which case every sheet comes from placeholders.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*image.NRGBA),
	}
}

// WithPlaceholders makes missing sheets fall back to generated ones.
func (l *Loader) WithPlaceholders(p *PlaceholderSet) *Loader {
	l.placeholders = p
	return l
}

// Request describes the sheet a caller needs, used for placeholders
type Request struct {
	Path        string
	FrameWidth  int
	FrameHeight int
	Frames      int
	Tint        string
}

// Sheet returns the decoded sheet for req.Path.
func (l *Loader) Sheet(req Request) (*image.NRGBA, error) {
	if img, ok := l.cache[req.Path]; ok {
		return img, nil
	}

	img, err := l.decode(req.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || l.placeholders == nil {
			return nil, err
		}
		log.Printf("[Asset] %s not found, using placeholder", req.Path)
		img = l.placeholders.Sheet(req)
	}

	l.cache[req.Path] = img
	return img, nil
}

func (l *Loader) decode(path string) (*image.NRGBA, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, fs.ErrNotExist)
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	log.Printf("[Asset] loaded %s (%s, %dx%d)", path, format, src.Bounds().Dx(), src.Bounds().Dy())

	return toNRGBA(src), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
