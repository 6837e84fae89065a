package hunk

// Kind is the change command of a normal or ed hunk.
type Kind int

const (
	Insert Kind = iota + 1
	Change
	Delete
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "a"
	case Change:
		return "c"
	case Delete:
		return "d"
	}
	return "?"
}

func kindOf(letter byte) (Kind, bool) {
	switch letter {
	case 'a':
		return Insert, true
	case 'c':
		return Change, true
	case 'd':
		return Delete, true
	}
	return 0, false
}
