package loop

import "github.com/tomz197/logastroids/internal/object"

// Intent is the per-frame ship control set.
type Intent = object.Intent

// Input is everything the core consumes in one frame: the held control
// intents plus discrete session commands.
type Input struct {
	Intent

	Start     bool   // start from the title screen or restart after game over
	Pause     bool   // toggle pause; also starts and restarts
	Confirm   bool   // submit the high-score name
	Backspace bool   // delete the last name character
	Text      []rune // printable characters typed this frame
	Quit      bool
}
