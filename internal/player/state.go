package player

// State is the backend's stream state.
//
//	Play:   any     -> Playing (Stopped if the file cannot be opened)
//	Pause:  Playing -> Paused
//	Resume: Paused  -> Playing
//	Stop:   any     -> Stopped
//
// Other calls leave the state unchanged.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

var stateNames = [...]string{Stopped: "Stopped", Playing: "Playing", Paused: "Paused"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
