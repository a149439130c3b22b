package passwords

import "unicode/utf8"

// Strength is a coarse rating of a strength score.
type Strength int

const (
	VeryWeak Strength = iota
	Weak
	Good
	Strong
)

// String implements fmt.Stringer.
func (s Strength) String() string {
	switch s {
	case Strong:
		return "strong"
	case Good:
		return "good"
	case Weak:
		return "weak"
	default:
		return "very weak"
	}
}

// EstimateStrength returns an additive heuristic score in 0..100:
//
//	length >= 8   +20
//	length >= 12  +20
//	length >= 16  +10
//	a-z           +15
//	A-Z           +15
//	0-9           +10
//	other         +10
//
// Length is counted in runes. This is not an entropy estimate.
func EstimateStrength(password string) int {
	if password == "" {
		return 0
	}

	score := 0

	n := utf8.RuneCountInString(password)
	if n >= 8 {
		score += 20
	}
	if n >= 12 {
		score += 20
	}
	if n >= 16 {
		score += 10
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	if lower {
		score += 15
	}
	if upper {
		score += 15
	}
	if digit {
		score += 10
	}
	if other {
		score += 10
	}

	return min(score, 100)
}

// Rate maps a score from [EstimateStrength] onto a [Strength] band.
func Rate(score int) Strength {
	switch {
	case score >= 80:
		return Strong
	case score >= 60:
		return Good
	case score >= 40:
		return Weak
	default:
		return VeryWeak
	}
}
