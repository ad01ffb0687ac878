package booking

import (
	"context"

	"github.com/ChiniHendi2004/appointment-api/internal/audit"
	"github.com/ChiniHendi2004/appointment-api/internal/cache"
	domain "github.com/ChiniHendi2004/appointment-api/internal/domain/booking"
	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	callerID uint,
	appointmentID uint,
) error {

	// Not-found and not-owned are indistinguishable on purpose, so the
	// endpoint leaks nothing about other users' appointments.
	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, callerID)
	if err != nil {
		return httperr.ErrBusiness("forbidden")
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return err
	}

	rows, err := uc.repo.CancelAppointment(ctx, ap.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrBusiness("no_rows_affected")
	}

	uc.cache.Invalidate(ctx, ap.ProviderID, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
