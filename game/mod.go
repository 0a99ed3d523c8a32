package game

// Action is a single step that can be taken from a state. Implementations
// must be small comparable values: the searcher keys its child maps by action
// and compares actions with ==.
type Action interface {
	String() string
}

// State should be immutable - operations on State always return a new copy.
type State interface {
	// LegalActions returns every action playable from this state. The result
	// must be non-empty unless Terminal reports true. The caller takes
	// ownership of the returned slice.
	LegalActions() []Action
	// Play executes an action and returns the resulting state as a new value,
	// leaving the receiver untouched.
	Play(Action) State
	// Terminal reports whether the game is over. Terminal states are
	// absorbing: the searcher never expands them or plays past them.
	Terminal() bool
	// Reward scores the state for the domain's fixed reward subject. It must
	// be defined and stable on terminal states; domains may define it
	// everywhere (the rover domain does).
	Reward() float64
}
