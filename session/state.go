package session

//go:generate stringer -type=State -linecomment

type State uint8

const (
	StateUnset      State = iota // UNSET
	StateReading                 // READING
	StateTerminated              // TERMINATED
)

// Answered is the transition taken after any complete request, served
// or refused.
func (s State) Answered() State {
	switch s {
	case StateReading:
		return StateReading
	}
	panic("wrong state")
}

// Closed is the transition taken when the input ends or the
// connection fails.
func (s State) Closed() State {
	switch s {
	case StateReading, StateTerminated:
		return StateTerminated
	}
	panic("wrong state")
}
