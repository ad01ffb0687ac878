package booking

import (
	"context"
	"time"

	domain "github.com/ChiniHendi2004/appointment-api/internal/domain/booking"
	"github.com/ChiniHendi2004/appointment-api/internal/slots"
)

// ListAppointments serves the three read-only projections: "where I am
// the customer", "where I am the provider" and "today, as provider".
// Each is filtered to active appointments and decorated with the
// counterparty profile by the repository join.
type ListAppointments struct {
	repo domain.Repository

	// Overridable clock for the today view.
	now func() time.Time
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *ListAppointments) AsCustomer(
	ctx context.Context,
	customerID uint,
) ([]domain.AppointmentView, error) {
	return uc.repo.ListForCustomer(ctx, customerID)
}

func (uc *ListAppointments) AsProvider(
	ctx context.Context,
	providerID uint,
) ([]domain.AppointmentView, error) {
	return uc.repo.ListForProvider(ctx, providerID)
}

func (uc *ListAppointments) TodayAsProvider(
	ctx context.Context,
	providerID uint,
) ([]domain.AppointmentView, error) {
	today := uc.now().Format(slots.DateLayout)
	return uc.repo.ListForProviderOnDate(ctx, providerID, today)
}
