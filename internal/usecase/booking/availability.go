package booking

import (
	"context"

	"github.com/ChiniHendi2004/appointment-api/internal/cache"
	domain "github.com/ChiniHendi2004/appointment-api/internal/domain/booking"
	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/slots"
)

// GetAvailability resolves a provider's day: catalog order, with booked
// slots winning over blocked ones when both ledgers match a label.
type GetAvailability struct {
	repo    domain.Repository
	catalog slots.Catalog
	cache   *cache.Availability
}

func NewGetAvailability(
	repo domain.Repository,
	catalog slots.Catalog,
	cache *cache.Availability,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	providerID uint,
	dateStr string,
) ([]domain.Slot, error) {

	date, err := slots.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if cached, ok := uc.cache.Get(ctx, providerID, date); ok {
		return cached, nil
	}

	unavailable, err := uc.repo.ListUnavailableSlots(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedSlots(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	blockedSet := toSet(unavailable)
	bookedSet := toSet(booked)

	out := make([]domain.Slot, 0, len(uc.catalog))
	for _, label := range uc.catalog {
		state := domain.SlotAvailable
		switch {
		case bookedSet[label]:
			state = domain.SlotBooked
		case blockedSet[label]:
			state = domain.SlotBlocked
		}
		out = append(out, domain.Slot{Label: label, State: state})
	}

	uc.cache.Set(ctx, providerID, date, out)

	return out, nil
}

// Available filters the resolved day down to bookable labels.
func (uc *GetAvailability) Available(
	ctx context.Context,
	providerID uint,
	dateStr string,
) ([]string, error) {

	resolved, err := uc.Execute(ctx, providerID, dateStr)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(resolved))
	for _, s := range resolved {
		if s.State == domain.SlotAvailable {
			labels = append(labels, s.Label)
		}
	}

	return labels, nil
}

func toSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return set
}
