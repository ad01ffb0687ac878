package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/ChiniHendi2004/appointment-api/internal/domain/booking"
	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var blocked int64
		if err := tx.
			Model(&models.UnavailableSlot{}).
			Where(
				"user_id = ? AND date = ? AND time_slot = ?",
				ap.ProviderID, ap.Date, ap.TimeSlot,
			).
			Count(&blocked).Error; err != nil {
			return err
		}

		if blocked > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		// No check-then-insert: the partial unique index on active
		// (provider, date, slot) rows decides the winner of a concurrent
		// book, and the loser's insert comes back as a duplicate key.
		if err := tx.Create(ap).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Cancellation
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentForUser(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND (customer_id = ? OR provider_id = ?)",
			appointmentID, userID, userID,
		).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) CancelAppointment(
	ctx context.Context,
	appointmentID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointmentID, models.AppointmentActive).
		Update("status", models.AppointmentCancelled)

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Slot resolution
// --------------------------------------------------

func (r *BookingGormRepository) ListUnavailableSlots(
	ctx context.Context,
	providerID uint,
	date string,
) ([]string, error) {

	var labels []string
	if err := r.db.WithContext(ctx).
		Model(&models.UnavailableSlot{}).
		Where("user_id = ? AND date = ?", providerID, date).
		Pluck("time_slot", &labels).Error; err != nil {
		return nil, err
	}

	return labels, nil
}

func (r *BookingGormRepository) ListBookedSlots(
	ctx context.Context,
	providerID uint,
	date string,
) ([]string, error) {

	var labels []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND date = ? AND status = ?",
			providerID, date, models.AppointmentActive,
		).
		Pluck("time_slot", &labels).Error; err != nil {
		return nil, err
	}

	return labels, nil
}

// --------------------------------------------------
// Availability ledger
// --------------------------------------------------

func (r *BookingGormRepository) SetUnavailable(
	ctx context.Context,
	providerID uint,
	date string,
	timeSlot string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UnavailableSlot{}).
		Where(
			"user_id = ? AND date = ? AND time_slot = ?",
			providerID, date, timeSlot,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	slot := models.UnavailableSlot{
		UserID:   providerID,
		Date:     date,
		TimeSlot: timeSlot,
	}

	if err := r.db.WithContext(ctx).Create(&slot).Error; err != nil {
		return false, err
	}

	return true, nil
}

// --------------------------------------------------
// Listing views
// --------------------------------------------------

const appointmentViewColumns = `
	appointments.id,
	appointments.provider_id,
	appointments.customer_id,
	appointments.date,
	appointments.time_slot,
	appointments.status,
	personal_information.full_name,
	personal_information.date_of_birth,
	personal_information.gender,
	personal_information.email,
	personal_information.phone_no,
	personal_information.state,
	personal_information.district,
	personal_information.village,
	personal_information.pincode,
	personal_information.role,
	personal_information.profile_img
`

func (r *BookingGormRepository) ListForCustomer(
	ctx context.Context,
	customerID uint,
) ([]domain.AppointmentView, error) {

	var views []domain.AppointmentView
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(appointmentViewColumns).
		Joins("LEFT JOIN personal_information ON personal_information.user_id = appointments.provider_id").
		Where(
			"appointments.customer_id = ? AND appointments.status = ?",
			customerID, models.AppointmentActive,
		).
		Scan(&views).Error

	return views, err
}

func (r *BookingGormRepository) ListForProvider(
	ctx context.Context,
	providerID uint,
) ([]domain.AppointmentView, error) {

	var views []domain.AppointmentView
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(appointmentViewColumns).
		Joins("LEFT JOIN personal_information ON personal_information.user_id = appointments.customer_id").
		Where(
			"appointments.provider_id = ? AND appointments.status = ?",
			providerID, models.AppointmentActive,
		).
		Scan(&views).Error

	return views, err
}

func (r *BookingGormRepository) ListForProviderOnDate(
	ctx context.Context,
	providerID uint,
	date string,
) ([]domain.AppointmentView, error) {

	var views []domain.AppointmentView
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(appointmentViewColumns).
		Joins("LEFT JOIN personal_information ON personal_information.user_id = appointments.customer_id").
		Where(
			"appointments.provider_id = ? AND appointments.status = ? AND appointments.date = ?",
			providerID, models.AppointmentActive, date,
		).
		Scan(&views).Error

	return views, err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
