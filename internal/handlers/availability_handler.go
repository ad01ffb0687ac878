package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/httpresp"
	"github.com/ChiniHendi2004/appointment-api/internal/middleware"
	ucBooking "github.com/ChiniHendi2004/appointment-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	setUC          *ucBooking.SetUnavailability
	availabilityUC *ucBooking.GetAvailability
}

func NewAvailabilityHandler(
	setUC *ucBooking.SetUnavailability,
	availabilityUC *ucBooking.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		setUC:          setUC,
		availabilityUC: availabilityUC,
	}
}

type SetUnavailabilityRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

func (h *AvailabilityHandler) SetUnavailability(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "date and time_slot are required.")
		return
	}

	err := h.setUC.Execute(c.Request.Context(), providerID, req.Date, req.TimeSlot)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
		case httperr.IsBusiness(err, "invalid_time_slot"):
			httperr.BadRequest(c, "invalid_time_slot", "Invalid time slot.")
		default:
			httperr.Internal(c, "failed_to_set_unavailability", "Something went wrong.")
		}
		return
	}

	httpresp.Message(c, "Unavailability saved successfully")
}

// providerParam resolves the provider whose calendar is being read:
// an explicit provider_id query, or the caller's own.
func providerParam(c *gin.Context) (uint, bool) {
	raw := c.Query("provider_id")
	if raw == "" {
		return c.MustGet(middleware.ContextUserID).(uint), true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GetAvailableSlots returns only the bookable labels for the date.
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	providerID, ok := providerParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider.")
		return
	}

	labels, err := h.availabilityUC.Available(c.Request.Context(), providerID, c.Param("date"))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_resolve_slots", "Something went wrong.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":            c.Param("date"),
		"available_slots": labels,
	})
}

// GetSlots returns the whole catalog for the date, each slot tagged
// available, booked or blocked, in catalog order.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	providerID, ok := providerParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider.")
		return
	}

	resolved, err := h.availabilityUC.Execute(c.Request.Context(), providerID, c.Param("date"))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_resolve_slots", "Something went wrong.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  c.Param("date"),
		"slots": resolved,
	})
}
