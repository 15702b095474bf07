package touchrect

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS attaches a StatsOverlay.
	ShowFPS bool
	// Overlays, if set, is applied to the scene before the loop starts.
	Overlays *OverlayConfig
	// LogFile, if set, sends the package log to a rotating JSON file.
	LogFile string
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene         *Scene
	width, height int
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives scene until the window is closed. The scene
// reads the Ebitengine input backend unless one was already set.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.LogFile != "" {
		SetLogger(NewFileLogger(cfg.LogFile, 0))
	}
	if cfg.Overlays != nil {
		if err := cfg.Overlays.Validate(); err != nil {
			return errors.Wrap(err, "run")
		}
		scene.ApplyOverlayConfig(*cfg.Overlays)
	}
	if scene.Input() == nil {
		scene.SetInput(NewEbitenPointerInput())
	}
	if cfg.ShowFPS {
		scene.AddOverlay(NewStatsOverlay(scene))
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	Logger().Info("run", zap.String("title", cfg.Title), zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	defer func() { _ = Logger().Sync() }()

	if err := ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height}); err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}
