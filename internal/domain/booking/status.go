package booking

import "github.com/ChiniHendi2004/appointment-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status int

const (
	StatusActive    Status = 0
	StatusCancelled Status = 1
)

// CanCancel rejects a second cancel: cancelled is terminal.
func CanCancel(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
