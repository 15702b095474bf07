package touchrect

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hako/durafmt"
)

const statsRefreshInterval = 0.5

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// StatsOverlay prints FPS, TPS, uptime and the scene's overlay counters in a
// corner of the screen. The text is refreshed every ~0.5 seconds.
type StatsOverlay struct {
	X, Y int

	scene   *Scene
	ticks   int
	elapsed float64
	text    string
}

// NewStatsOverlay creates a stats overlay reading from s. It is not
// attached; pass it to Scene.AddOverlay.
func NewStatsOverlay(s *Scene) *StatsOverlay {
	return &StatsOverlay{X: 4, Y: 4, scene: s, elapsed: statsRefreshInterval}
}

// Update implements Overlay.
func (o *StatsOverlay) Update() {
	o.ticks++
	o.elapsed += 1 / float64(ebiten.TPS())
	if o.elapsed < statsRefreshInterval {
		return
	}
	o.elapsed = 0
	o.text = o.format(ebiten.ActualFPS(), ebiten.ActualTPS())
}

// uptime is the simulated time since the first Update.
func (o *StatsOverlay) uptime() time.Duration {
	d := time.Duration(float64(o.ticks) / float64(ebiten.TPS()) * float64(time.Second))
	return d.Truncate(time.Second)
}

func (o *StatsOverlay) format(fps, tps float64) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if up := o.uptime(); up > 0 {
		s += "\nUp: " + durafmt.Parse(up).LimitFirstN(2).Format(shortUnits)
	}
	if o.scene == nil {
		return s
	}
	if t := o.scene.TargetOverlay(); t != nil && t.Enabled && t.Targets != nil {
		s += "\nTargets: " + humanize.Comma(int64(len(t.Targets.Targets())))
	}
	if h := o.scene.HitOverlay(); h != nil && h.Hits != nil && h.Hits.Enabled() {
		s += "\nHits: " + humanize.Comma(int64(len(h.Hits.Hits())))
	}
	return s
}

// Text returns the most recently formatted text.
func (o *StatsOverlay) Text() string {
	return o.text
}

// Draw implements Overlay.
func (o *StatsOverlay) Draw(dst *ebiten.Image) {
	if o.text == "" {
		return
	}
	ebitenutil.DebugPrintAt(dst, o.text, o.X, o.Y)
}
