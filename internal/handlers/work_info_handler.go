package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/httpresp"
	"github.com/ChiniHendi2004/appointment-api/internal/middleware"
	"github.com/ChiniHendi2004/appointment-api/internal/models"
)

type WorkInfoHandler struct {
	db *gorm.DB
}

func NewWorkInfoHandler(db *gorm.DB) *WorkInfoHandler {
	return &WorkInfoHandler{db: db}
}

type WorkInfoRequest struct {
	WorkName       string `json:"work_name"`
	CompanyName    string `json:"company_name"`
	Position       string `json:"position"`
	Duration       string `json:"duration"`
	CurrentWorking string `json:"current_working"`
	State          string `json:"state"`
	District       string `json:"district"`
	Village        string `json:"village"`
	Pincode        string `json:"pincode"`
}

func (h *WorkInfoHandler) Fetch(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var records []models.WorkInformation
	if err := h.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch", "Something went wrong.")
		return
	}

	httpresp.OK(c, records)
}

func (h *WorkInfoHandler) CreateOrUpdate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid work information payload.")
		return
	}

	var existing models.WorkInformation
	err := h.db.Where("user_id = ?", userID).First(&existing).Error

	if err == nil {
		updateErr := h.db.Model(&existing).Updates(map[string]any{
			"work_name":       req.WorkName,
			"company_name":    req.CompanyName,
			"position":        req.Position,
			"duration":        req.Duration,
			"current_working": req.CurrentWorking,
			"state":           req.State,
			"district":        req.District,
			"village":         req.Village,
			"pincode":         req.Pincode,
		}).Error
		if updateErr != nil {
			httperr.Internal(c, "failed_to_update", "Something went wrong.")
			return
		}
		httpresp.Message(c, "Updated successfully")
		return
	}

	info := models.WorkInformation{
		UserID:         userID,
		WorkName:       req.WorkName,
		CompanyName:    req.CompanyName,
		Position:       req.Position,
		Duration:       req.Duration,
		CurrentWorking: req.CurrentWorking,
		State:          req.State,
		District:       req.District,
		Village:        req.Village,
		Pincode:        req.Pincode,
	}

	if err := h.db.Create(&info).Error; err != nil {
		httperr.Internal(c, "failed_to_insert", "Something went wrong.")
		return
	}

	httpresp.MessageData(c, "Inserted successfully", gin.H{"id": info.ID})
}
