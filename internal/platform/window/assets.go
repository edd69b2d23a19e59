package window

import (
	_ "image/jpeg" // Decoders for ebitenutil.NewImageFromFile
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Assets holds the optional sprite images keyed by asset name.
// A missing entry makes the renderer draw the primitive's fallback shape.
type Assets struct {
	images map[string]*ebiten.Image
}

// LoadAssets loads the configured sprite images. Files that cannot be
// read are logged and skipped.
func LoadAssets(cfg config.AssetConfig, logger *log.Logger) *Assets {
	a := &Assets{images: make(map[string]*ebiten.Image)}
	a.load(flappy.AssetBird, cfg.BirdImage, logger)
	a.load(flappy.AssetPipe, cfg.PipeImage, logger)
	return a
}

func (a *Assets) load(name, path string, logger *log.Logger) {
	if path == "" {
		return
	}
	img, _, err := ebitenutil.NewImageFromFile(config.ExpandHome(path))
	if err != nil {
		logger.Warn("image not loaded, using shapes", "asset", name, "path", path, "error", err)
		return
	}
	a.images[name] = img
}

// Has reports whether an image is available for the asset.
func (a *Assets) Has(name string) bool {
	_, ok := a.images[name]
	return ok
}

// Image returns the image for the asset, or nil.
func (a *Assets) Image(name string) *ebiten.Image {
	return a.images[name]
}
