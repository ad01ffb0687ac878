package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ChiniHendi2004/appointment-api/internal/config"
	domain "github.com/ChiniHendi2004/appointment-api/internal/domain/booking"
	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/httpresp"
	"github.com/ChiniHendi2004/appointment-api/internal/middleware"
	ucBooking "github.com/ChiniHendi2004/appointment-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	config *config.Config

	bookUC   *ucBooking.BookSlot
	cancelUC *ucBooking.CancelAppointment
	listUC   *ucBooking.ListAppointments
}

func NewBookingHandler(
	cfg *config.Config,
	bookUC *ucBooking.BookSlot,
	cancelUC *ucBooking.CancelAppointment,
	listUC *ucBooking.ListAppointments,
) *BookingHandler {
	return &BookingHandler{
		config:   cfg,
		bookUC:   bookUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookSlotRequest struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	TimeSlot   string `json:"time_slot" binding:"required"`
}

type CancelAppointmentRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *BookingHandler) BookSlot(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "provider_id, date and time_slot are required.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), customerID, ucBooking.BookSlotInput{
		ProviderID: req.ProviderID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.BadRequest(c, "slot_unavailable", "Slot is not available")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
		case httperr.IsBusiness(err, "invalid_provider_id"):
			httperr.BadRequest(c, "invalid_provider_id", "Invalid provider.")
		case httperr.IsBusiness(err, "invalid_time_slot"):
			httperr.BadRequest(c, "invalid_time_slot", "Invalid time slot.")
		default:
			httperr.Internal(c, "failed_to_book_slot", "Something went wrong.")
		}
		return
	}

	httpresp.MessageData(c, "Appointment booked successfully", gin.H{
		"appointment_id": ap.ID,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "appointment_id is required.")
		return
	}

	err := h.cancelUC.Execute(c.Request.Context(), callerID, req.AppointmentID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "forbidden"):
			httperr.Forbidden(c, "forbidden", "Unauthorized or appointment not found")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Appointment is already cancelled.")
		case httperr.IsBusiness(err, "no_rows_affected"):
			httperr.Internal(c, "no_rows_affected", "Failed to cancel appointment. No rows affected.")
		default:
			httperr.Internal(c, "failed_to_cancel", "Something went wrong.")
		}
		return
	}

	httpresp.Message(c, "Appointment cancelled successfully")
}

// ======================================================
// LISTING VIEWS
// ======================================================

func (h *BookingHandler) UserAppointments(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	views, err := h.listUC.AsCustomer(c.Request.Context(), callerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Something went wrong.")
		return
	}

	httpresp.OK(c, h.decorate(views))
}

func (h *BookingHandler) MyAppointments(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	views, err := h.listUC.AsProvider(c.Request.Context(), callerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Something went wrong.")
		return
	}

	httpresp.OK(c, h.decorate(views))
}

func (h *BookingHandler) TodayAppointments(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	views, err := h.listUC.TodayAsProvider(c.Request.Context(), callerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Something went wrong.")
		return
	}

	if len(views) == 0 {
		c.JSON(200, gin.H{"status": false, "message": "No appointments found"})
		return
	}

	httpresp.OK(c, h.decorate(views))
}

// decorate rewrites stored image paths into absolute URLs.
func (h *BookingHandler) decorate(views []domain.AppointmentView) []domain.AppointmentView {
	out := make([]domain.AppointmentView, len(views))
	for i, v := range views {
		v.ProfileImg = h.config.FileURL(v.ProfileImg)
		out[i] = v
	}
	return out
}
