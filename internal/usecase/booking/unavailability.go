package booking

import (
	"context"

	"github.com/ChiniHendi2004/appointment-api/internal/audit"
	"github.com/ChiniHendi2004/appointment-api/internal/cache"
	domain "github.com/ChiniHendi2004/appointment-api/internal/domain/booking"
	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/slots"
)

type SetUnavailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewSetUnavailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *SetUnavailability {
	return &SetUnavailability{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute records the block. Re-declaring the same tuple succeeds
// without inserting a second row.
func (uc *SetUnavailability) Execute(
	ctx context.Context,
	providerID uint,
	dateStr string,
	timeSlot string,
) error {

	if timeSlot == "" {
		return httperr.ErrBusiness("invalid_time_slot")
	}

	date, err := slots.ParseDate(dateStr)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	created, err := uc.repo.SetUnavailable(ctx, providerID, date, timeSlot)
	if err != nil {
		return err
	}

	if created {
		uc.cache.Invalidate(ctx, providerID, date)
		uc.audit.Dispatch(audit.Event{
			UserID: &providerID,
			Action: "unavailability_set",
			Entity: "unavailable_slot",
			Metadata: map[string]any{
				"date":      date,
				"time_slot": timeSlot,
			},
		})
	}

	return nil
}
