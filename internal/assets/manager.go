package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"log/slog"
)

//go:embed images
var projectAssets embed.FS

// Embedded returns the bundled asset root. Paths are relative to it,
// e.g. "menu/start.png".
func Embedded() fs.FS {
	sub, err := fs.Sub(projectAssets, "images")
	if err != nil {
		panic(err)
	}
	return sub
}

// Loader decodes images from an asset root into textures. It keeps no cache:
// every Load returns a new texture owned by the caller.
type Loader struct {
	fsys   fs.FS
	logger *slog.Logger
	live   int
}

func NewLoader(fsys fs.FS, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{fsys: fsys, logger: logger}
}

// Load reads and decodes the image at name. Errors carry the asset path.
func (l *Loader) Load(name string) (*Texture, error) {
	fileData, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %q: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", name, err)
	}

	l.live++
	b := img.Bounds()
	l.logger.Debug("texture loaded", "path", name, "width", b.Dx(), "height", b.Dy(), "live", l.live)
	return &Texture{name: name, src: img, owner: l}, nil
}

// Live reports how many loaded textures have not been disposed yet.
func (l *Loader) Live() int {
	return l.live
}

func (l *Loader) release(t *Texture) {
	l.live--
	l.logger.Debug("texture released", "path", t.name, "live", l.live)
}
