package touchrect

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// OverlayConfig holds the switches and styling of the debug overlays. The
// zero value disables everything; start from DefaultOverlayConfig.
type OverlayConfig struct {
	// Targets enables the target overlay.
	Targets bool `json:"targets"`
	// TouchRects draws the hit overlay's touch rectangles.
	TouchRects bool `json:"touchRects"`
	// TouchNames logs newly touched elements.
	TouchNames bool `json:"touchNames"`
	// LineWidth is the target outline width on a 1920-pixel screen edge.
	LineWidth float64 `json:"lineWidth"`
	// TargetColor is the outline color.
	TargetColor Color `json:"targetColor"`
	// HitColor tints every corner color of the hit overlay.
	HitColor Color `json:"hitColor"`
	// CornerColors is the hit overlay palette. Empty falls back to
	// translucent black.
	CornerColors []Color `json:"cornerColors"`
	// Inspect re-reads the surface list every tick.
	Inspect bool `json:"inspect"`
}

// DefaultOverlayConfig returns the stock configuration: both overlays on,
// touch names off.
func DefaultOverlayConfig() OverlayConfig {
	return OverlayConfig{
		Targets:      true,
		TouchRects:   true,
		LineWidth:    defaultLineWidth,
		TargetColor:  ColorGreen,
		HitColor:     ColorWhite,
		CornerColors: DefaultCornerColors(),
	}
}

// Validate reports configuration values the overlays cannot use.
func (c OverlayConfig) Validate() error {
	if c.LineWidth <= 0 {
		return errors.Errorf("lineWidth must be positive, got %g", c.LineWidth)
	}
	return nil
}

// ParseOverlayConfig decodes JSON on top of DefaultOverlayConfig, so
// omitted fields keep their defaults.
func ParseOverlayConfig(data []byte) (OverlayConfig, error) {
	cfg := DefaultOverlayConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return OverlayConfig{}, errors.Wrap(err, "parse overlay config")
	}
	if err := cfg.Validate(); err != nil {
		return OverlayConfig{}, errors.Wrap(err, "parse overlay config")
	}
	return cfg, nil
}

// LoadOverlayConfig reads and parses the JSON file at path.
func LoadOverlayConfig(path string) (OverlayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OverlayConfig{}, errors.Wrapf(err, "load overlay config %s", path)
	}
	return ParseOverlayConfig(data)
}

// ApplyOverlayConfig configures the scene's overlays from cfg, creating any
// that are missing.
func (s *Scene) ApplyOverlayConfig(cfg OverlayConfig) {
	t := s.TargetOverlay()
	if t == nil {
		t = s.NewTargetOverlay()
	}
	t.Enabled = cfg.Targets
	t.LineWidth = cfg.LineWidth
	t.Color = cfg.TargetColor
	if t.Targets != nil {
		t.Targets.Inspect = cfg.Inspect
	}

	h := s.HitOverlay()
	if h == nil {
		h = s.NewHitOverlay()
	}
	h.Color = cfg.HitColor
	h.CornerColors = append(h.CornerColors[:0], cfg.CornerColors...)
	s.SetHitOverlay(cfg.TouchRects, cfg.TouchNames)
}
