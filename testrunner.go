package touchrect

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// touchStep represents a single action in a touch script.
type touchStep struct {
	Action string  `json:"action"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	// Enabled, Draw and Dump switch the overlays.
	Enabled bool `json:"enabled,omitempty"`
	Draw    bool `json:"draw,omitempty"`
	Dump    bool `json:"dump,omitempty"`
}

// touchScript is the top-level JSON structure for a touch script.
type touchScript struct {
	Steps []touchStep `json:"steps"`
}

var touchActions = map[string]bool{
	"mouse":          true,
	"mouse_off":      true,
	"touch":          true,
	"move":           true,
	"release":        true,
	"wait":           true,
	"target_overlay": true,
	"hit_overlay":    true,
}

// TouchScript replays scripted mouse and touch input, one step per tick,
// through an InjectedInput. Attach to a Scene via SetTouchScript.
type TouchScript struct {
	steps     []touchStep
	input     InjectedInput
	cursor    int
	waitCount int
	done      bool
}

// LoadTouchScript parses a JSON touch script and returns a TouchScript ready
// to be attached to a Scene via SetTouchScript.
func LoadTouchScript(jsonData []byte) (*TouchScript, error) {
	var script touchScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, errors.Wrap(err, "parse touch script")
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse touch script: no steps")
	}
	for i, st := range script.Steps {
		if !touchActions[st.Action] {
			return nil, errors.Errorf("parse touch script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TouchScript{steps: script.Steps}, nil
}

// SetTouchScript attaches r to the scene and makes its injected input the
// scene's backend. The script advances at the start of every Update.
func (s *Scene) SetTouchScript(r *TouchScript) {
	s.script = r
	if r != nil {
		s.SetInput(&r.input)
	}
}

// Input returns the injected backend the script drives.
func (r *TouchScript) Input() *InjectedInput {
	return &r.input
}

// Done reports whether all steps in the script have been executed.
func (r *TouchScript) Done() bool {
	return r.done
}

// step advances the script by one tick. Called from Scene.Update.
func (r *TouchScript) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "mouse":
		r.input.MoveMouse(st.X, st.Y)
	case "mouse_off":
		r.input.RemoveMouse()
	case "touch":
		r.input.PressTouch(st.ID, st.X, st.Y)
	case "move":
		r.input.MoveTouch(st.ID, st.X, st.Y)
	case "release":
		r.input.ReleaseTouch(st.ID)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "target_overlay":
		s.SetTargetOverlay(st.Enabled)
	case "hit_overlay":
		s.SetHitOverlay(st.Draw, st.Dump)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
