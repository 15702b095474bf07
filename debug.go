package touchrect

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugStats holds per-tick overlay metrics. Only logged in debug mode.
type debugStats struct {
	surfaces int
	targets  int
	pointers int
	hits     int
	queries  int
}

// debugLogInterval throttles the per-tick stats line.
const debugLogInterval = 500 * time.Millisecond

func newDebugLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(debugLogInterval), 1)
}

func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	if s.debugLimiter != nil && !s.debugLimiter.Allow() {
		return
	}
	Logger().Debug("tick",
		zap.Int("surfaces", stats.surfaces),
		zap.Int("targets", stats.targets),
		zap.Int("pointers", stats.pointers),
		zap.Int("hits", stats.hits),
		zap.Int("queries", stats.queries),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic("touchrect debug: " + op + " on disposed node " + n.Name)
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			zap.Int("depth", depth), zap.Int("threshold", debugMaxTreeDepth), zap.String("node", n.Name))
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("child count exceeds threshold",
			zap.Int("children", len(n.children)), zap.Int("threshold", debugMaxChildCount), zap.String("node", n.Name))
	}
}
