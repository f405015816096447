package dispatch

import "fmt"

// State is the phase of a Session's synchronization state machine.
//
//	Idle --Synchronize--> Synchronizing --pass done--> Idle
//
// A Synchronize call that arrives while the session is Synchronizing is
// rejected with ErrInFlight and leaves the state untouched.
type State int

const (
	Idle State = iota
	Synchronizing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Synchronizing:
		return "synchronizing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
