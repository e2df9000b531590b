// Package audio synthesizes the game's sound cues and guards their playback.
package audio

// Cue identifies a fire-and-forget sound effect.
type Cue uint8

const (
	CueBounce Cue = iota // Wall or paddle bounce
	CueScore             // Point scored
)

// Cues lists every cue.
var Cues = []Cue{CueBounce, CueScore}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}
