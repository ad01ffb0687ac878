package booking

import (
	"context"

	"github.com/ChiniHendi2004/appointment-api/internal/audit"
	"github.com/ChiniHendi2004/appointment-api/internal/cache"
	domain "github.com/ChiniHendi2004/appointment-api/internal/domain/booking"
	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/models"
	"github.com/ChiniHendi2004/appointment-api/internal/slots"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	ProviderID uint
	Date       string
	TimeSlot   string
}

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewBookSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *BookSlot {
	return &BookSlot{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *BookSlot) Execute(
	ctx context.Context,
	customerID uint,
	in BookSlotInput,
) (*models.Appointment, error) {

	if in.ProviderID == 0 {
		return nil, httperr.ErrBusiness("invalid_provider_id")
	}
	if in.TimeSlot == "" {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	date, err := slots.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	ap := &models.Appointment{
		ProviderID: in.ProviderID,
		CustomerID: customerID,
		Date:       date,
		TimeSlot:   in.TimeSlot,
		Status:     int(domain.InitialStatus()),
	}

	// The unavailability check and the insert run in one transaction;
	// a partial unique index on active (provider, date, slot) rows
	// makes the loser of a concurrent book get slot_unavailable.
	if err := uc.repo.BookSlot(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.ProviderID, date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"provider_id": in.ProviderID,
			"date":        date,
			"time_slot":   in.TimeSlot,
		},
	})

	return ap, nil
}
