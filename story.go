package gallows

import (
	"encoding/json"
	"fmt"
)

// storyStep represents a single action in a story script.
type storyStep struct {
	Action string `json:"action"`
	Count  int    `json:"count,omitempty"`
	Width  int    `json:"width,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// storyScript is the top-level JSON structure for a story script.
type storyScript struct {
	Steps []storyStep `json:"steps"`
}

// Story sequences guess-count and resize changes across frames for visual
// development of a Drawing. A script is a JSON document of steps:
//
//	{"steps": [
//	  {"action": "guesses", "count": 7},
//	  {"action": "wait", "frames": 30},
//	  {"action": "resize", "width": 400},
//	  {"action": "reset"}
//	]}
//
// Call Step once per frame from the game loop.
type Story struct {
	steps     []storyStep
	cursor    int
	waitCount int
	done      bool
}

// LoadStory parses a JSON story script.
func LoadStory(jsonData []byte) (*Story, error) {
	var script storyScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse story script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse story script: no steps")
	}
	return &Story{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (st *Story) Done() bool {
	return st.done
}

// Rewind restarts the story from the first step.
func (st *Story) Rewind() {
	st.cursor = 0
	st.waitCount = 0
	st.done = false
}

// Step advances the story by one frame, applying at most one action to the
// given Drawing. Unknown actions are skipped.
func (st *Story) Step(d *Drawing) {
	if st.done {
		return
	}
	// Count down wait frames.
	if st.waitCount > 0 {
		st.waitCount--
		return
	}
	if st.cursor >= len(st.steps) {
		st.done = true
		return
	}

	s := st.steps[st.cursor]
	st.cursor++

	switch s.Action {
	case "guesses":
		d.SetIncorrectGuesses(s.Count)
	case "resize":
		d.SetSize(s.Width)
	case "reset":
		d.SetIncorrectGuesses(0)
	case "wait":
		if s.Frames > 0 {
			st.waitCount = s.Frames - 1 // this frame counts as one
		}
	}

	if st.cursor >= len(st.steps) && st.waitCount == 0 {
		st.done = true
	}
}
