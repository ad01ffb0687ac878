package booking

import (
	"context"

	"github.com/ChiniHendi2004/appointment-api/internal/models"
)

type Repository interface {
	// -------- Booking (atomic conditional insert) --------

	// BookSlot checks the unavailability ledger and the active
	// appointments for the tuple, then inserts, all in one transaction.
	// Returns the business error "slot_unavailable" when either matches.
	BookSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Cancellation --------

	// GetAppointmentForUser fetches an appointment only when userID is
	// its customer or its provider.
	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	// CancelAppointment flips status to cancelled and reports affected rows.
	CancelAppointment(
		ctx context.Context,
		appointmentID uint,
	) (int64, error)

	// -------- Slot resolution --------

	ListUnavailableSlots(
		ctx context.Context,
		providerID uint,
		date string,
	) ([]string, error)

	ListBookedSlots(
		ctx context.Context,
		providerID uint,
		date string,
	) ([]string, error)

	// -------- Availability ledger --------

	// SetUnavailable records a block unless the exact tuple already
	// exists; reports whether a row was created.
	SetUnavailable(
		ctx context.Context,
		providerID uint,
		date string,
		timeSlot string,
	) (bool, error)

	// -------- Listing views --------

	ListForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]AppointmentView, error)

	ListForProvider(
		ctx context.Context,
		providerID uint,
	) ([]AppointmentView, error)

	ListForProviderOnDate(
		ctx context.Context,
		providerID uint,
		date string,
	) ([]AppointmentView, error)
}
