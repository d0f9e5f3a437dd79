package strength

// State counts how many character classes a password has shown so far.
// It saturates at Three.
type State uint8

const (
	None State = iota
	One
	Two
	Three
)

// Advance moves the state one step forward. Three stays Three.
func (s *State) Advance() {
	if *s < Three {
		*s++
	}
}

// Reset returns the state to None.
func (s *State) Reset() {
	*s = None
}

func (s State) String() string {
	switch s {
	case None:
		return "noneValid"
	case One:
		return "oneValid"
	case Two:
		return "twoValid"
	case Three:
		return "threeValid"
	default:
		return "unknown"
	}
}
