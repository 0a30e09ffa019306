package rotate

import "time"

// State is everything the rotation loop carries between iterations.
// Images is the rotator's own copy; the directory is never touched.
type State struct {
	Images   []string
	Index    int
	Interval time.Duration
	Policy   Policy
}

// Current is the image for this iteration. Index is only reduced here so a
// sequential run can keep counting up.
func (s State) Current() string {
	return s.Images[s.Index%len(s.Images)]
}

// Prepare builds the initial state. Random runs are shuffled before the
// first image is shown.
func Prepare(images []string, interval time.Duration, policy Policy, shuffle func([]string)) State {
	working := make([]string, len(images))
	copy(working, images)

	if policy == Random {
		shuffle(working)
	}
	return State{
		Images:   working,
		Interval: interval,
		Policy:   policy,
	}
}

// Advance moves to the next image according to the policy.
func Advance(s State, shuffle func([]string)) State {
	switch s.Policy {
	case Random:
		shuffle(s.Images)
		s.Index = 0
	default:
		s.Index++
	}
	return s
}
