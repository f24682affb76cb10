package repl

import "strings"

// Exact inputs that meme mode answers without calculating
var memeAnswers = map[string]string{
	"9+10": "= 21 😂",
	"2+2":  "= 5 (quick maths)",
	"1+1":  "= 11 (big brain)",
	"67":   "= THE MEME NUMBER 67! 🔥",
	"41":   "= 41! The answer to everything (almost) 🤔",
}

const (
	MemeOn  = "Meme mode: ON 😂"
	MemeOff = "Meme mode: OFF"
)

// memeAnswer returns the canned reply for line, if any
func memeAnswer(line string) (string, bool) {
	answer, ok := memeAnswers[line]
	return answer, ok
}

// memeAnnotation returns the suffix added to a result whose input
// mentions one of the meme numbers. 67 wins over 41.
func memeAnnotation(line string) string {
	switch {
	case strings.Contains(line, "67"):
		return " (contains the legendary 67! 🔥)"
	case strings.Contains(line, "41"):
		return " (contains 41! 🤔)"
	default:
		return ""
	}
}

func memeStatus(on bool) string {
	if on {
		return MemeOn
	}
	return MemeOff
}
