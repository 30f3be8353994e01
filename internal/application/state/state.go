package state

// AppState is the top-level mode of the application.
type AppState int

const (
	StateMainMenu AppState = iota
	StateLoading
	StateInGame
	StatePaused
)

// String returns the string representation of the app state
func (s AppState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateLoading:
		return "Loading"
	case StateInGame:
		return "InGame"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the simulation advances in this state.
func (s AppState) Simulating() bool {
	return s == StateInGame
}

// Transition applies the Start and Select buttons to s.
// Start together with Select requests quit regardless of state.
func Transition(s AppState, start, sel bool) (next AppState, quit bool) {
	if start && sel {
		return s, true
	}
	if !start {
		return s, false
	}

	switch s {
	case StateMainMenu:
		return StateLoading, false
	case StateInGame:
		return StatePaused, false
	case StatePaused:
		return StateInGame, false
	default:
		// Start is ignored while a level is loading.
		return s, false
	}
}

// Loaded returns the state to enter once a level finished loading.
func Loaded(s AppState) AppState {
	if s == StateLoading {
		return StateInGame
	}
	return s
}
