package types

// Tri is a three-valued boolean predicate: unset means "don't care".
type Tri uint8

const (
	TriUnset Tri = iota
	TriTrue
	TriFalse
)

// TriOf converts a concrete bool into a set Tri.
func TriOf(b bool) Tri {
	if b {
		return TriTrue
	}
	return TriFalse
}

// Matches reports whether b satisfies the predicate.
func (t Tri) Matches(b bool) bool {
	switch t {
	case TriTrue:
		return b
	case TriFalse:
		return !b
	default:
		return true
	}
}

// Solve returns a value that satisfies the predicate, preferring seed.
func (t Tri) Solve(seed bool) bool {
	switch t {
	case TriTrue:
		return true
	case TriFalse:
		return false
	default:
		return seed
	}
}

func (t Tri) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "unset"
	}
}
