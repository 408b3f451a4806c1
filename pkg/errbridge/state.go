package errbridge

// State is the registration state of a [Bridge].
type State string

const (
	// StateUnregistered is the initial state. Library errors raised while
	// in this state never reach the handler.
	StateUnregistered State = "unregistered"

	// StateRegistered is entered by the first call to [Bridge.Initialize]
	// and is never left; there is no unregister operation.
	StateRegistered State = "registered"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// Valid reports whether s is a recognised state.
func (s State) Valid() bool {
	switch s {
	case StateUnregistered, StateRegistered:
		return true
	default:
		return false
	}
}
