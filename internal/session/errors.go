package session

import "errors"

var ErrRequestInFlight = errors.New("a check-in or check-out is already in flight for this membership")

// CheckInError carries the message shown inline next to the check-in control.
type CheckInError struct {
	Reason string
}

func (e *CheckInError) Error() string { return e.Reason }

// CheckOutError is the check-out counterpart of CheckInError.
type CheckOutError struct {
	Reason string
}

func (e *CheckOutError) Error() string { return e.Reason }

// reasonFor extracts the server-reported message when there is one. Anything
// else (transport failures included) collapses to the generic fallback.
func reasonFor(err error, fallback string) string {
	var m interface{ ServerMessage() string }
	if errors.As(err, &m) {
		if msg := m.ServerMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}
