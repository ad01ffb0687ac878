package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ChiniHendi2004/appointment-api/internal/config"
	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/httpresp"
	"github.com/ChiniHendi2004/appointment-api/internal/middleware"
	"github.com/ChiniHendi2004/appointment-api/internal/models"
	"github.com/ChiniHendi2004/appointment-api/internal/storage"
)

type BusinessHandler struct {
	db     *gorm.DB
	config *config.Config
	files  storage.FileStore
}

func NewBusinessHandler(db *gorm.DB, cfg *config.Config, files storage.FileStore) *BusinessHandler {
	return &BusinessHandler{db: db, config: cfg, files: files}
}

func (h *BusinessHandler) Fetch(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var business models.BusinessInformation
	if err := h.db.Where("user_id = ?", userID).First(&business).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "No business information found")
			return
		}
		httperr.Internal(c, "failed_to_fetch", "Something went wrong.")
		return
	}

	if business.BusinessLogo != "" {
		business.BusinessLogo = h.config.FileURL(business.BusinessLogo)
	}

	httpresp.OK(c, business)
}

// StoreOrUpdate takes multipart form data; business_logo is optional.
// The new logo is written before the pointer swap, the old one deleted
// after it.
func (h *BusinessHandler) StoreOrUpdate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ctx := c.Request.Context()

	var existing models.BusinessInformation
	found := h.db.Where("user_id = ?", userID).First(&existing).Error == nil

	logoPath := existing.BusinessLogo
	oldPath := ""

	if fh, err := c.FormFile("business_logo"); err == nil {
		newPath, err := saveUpload(ctx, h.files, "business_logos", fh)
		if err != nil {
			httperr.Internal(c, "failed_to_store_logo", "Something went wrong.")
			return
		}
		oldPath = logoPath
		logoPath = newPath
	}

	fields := map[string]any{
		"business_name":    c.PostForm("business_name"),
		"business_type":    c.PostForm("business_type"),
		"business_address": c.PostForm("business_address"),
		"city":             c.PostForm("city"),
		"state":            c.PostForm("state"),
		"district":         c.PostForm("district"),
		"pincode":          c.PostForm("pincode"),
		"business_logo":    logoPath,
	}

	if found {
		if err := h.db.Model(&existing).Updates(fields).Error; err != nil {
			httperr.Internal(c, "failed_to_update", "Something went wrong.")
			return
		}

		deleteOldFile(ctx, h.files, oldPath)

		httpresp.Message(c, "Business information updated successfully")
		return
	}

	business := models.BusinessInformation{
		UserID:          userID,
		BusinessName:    c.PostForm("business_name"),
		BusinessType:    c.PostForm("business_type"),
		BusinessAddress: c.PostForm("business_address"),
		City:            c.PostForm("city"),
		State:           c.PostForm("state"),
		District:        c.PostForm("district"),
		Pincode:         c.PostForm("pincode"),
		BusinessLogo:    logoPath,
	}

	if err := h.db.Create(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_insert", "Something went wrong.")
		return
	}

	httpresp.Message(c, "Business information saved successfully")
}
