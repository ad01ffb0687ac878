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

type PersonalInfoHandler struct {
	db     *gorm.DB
	config *config.Config
	files  storage.FileStore
}

func NewPersonalInfoHandler(db *gorm.DB, cfg *config.Config, files storage.FileStore) *PersonalInfoHandler {
	return &PersonalInfoHandler{db: db, config: cfg, files: files}
}

type PersonalInfoRequest struct {
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"dob"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	PhoneNo     string `json:"phone"`
	State       string `json:"state"`
	District    string `json:"district"`
	Village     string `json:"village"`
	Pincode     string `json:"pincode"`
	Role        string `json:"role"`
}

// ======================================================
// FETCH (caller's own record)
// ======================================================

func (h *PersonalInfoHandler) Fetch(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var records []models.PersonalInformation
	if err := h.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch", "Something went wrong.")
		return
	}

	httpresp.OK(c, records)
}

// ======================================================
// LIST (everyone else, image URLs decorated)
// ======================================================

func (h *PersonalInfoHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var records []models.PersonalInformation
	if err := h.db.Where("user_id != ?", userID).Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Something went wrong.")
		return
	}

	httpresp.OK(c, h.decorate(records))
}

// ======================================================
// CREATE OR UPDATE
// ======================================================

func (h *PersonalInfoHandler) CreateOrUpdate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req PersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid personal information payload.")
		return
	}

	fields := map[string]any{
		"full_name":     req.FullName,
		"date_of_birth": req.DateOfBirth,
		"gender":        req.Gender,
		"email":         req.Email,
		"phone_no":      req.PhoneNo,
		"state":         req.State,
		"district":      req.District,
		"village":       req.Village,
		"pincode":       req.Pincode,
		"role":          req.Role,
	}

	var existing models.PersonalInformation
	err := h.db.Where("user_id = ?", userID).First(&existing).Error

	if err == nil {
		if err := h.db.Model(&existing).Updates(fields).Error; err != nil {
			httperr.Internal(c, "failed_to_update", "Something went wrong.")
			return
		}
		httpresp.Message(c, "Updated successfully")
		return
	}

	info := models.PersonalInformation{
		UserID:      userID,
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Email:       req.Email,
		PhoneNo:     req.PhoneNo,
		State:       req.State,
		District:    req.District,
		Village:     req.Village,
		Pincode:     req.Pincode,
		Role:        req.Role,
	}

	if err := h.db.Create(&info).Error; err != nil {
		httperr.Internal(c, "failed_to_insert", "Something went wrong.")
		return
	}

	httpresp.MessageData(c, "Inserted successfully", gin.H{"id": info.ID})
}

// ======================================================
// PROFILE IMAGE
// ======================================================

func (h *PersonalInfoHandler) UpdateProfileImage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	fh, err := c.FormFile("profile_img")
	if err != nil {
		httperr.BadRequest(c, "no_image_uploaded", "No image uploaded")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_upload", "Something went wrong.")
		return
	}
	defer f.Close()

	normalized, err := storage.NormalizeImage(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Uploaded file is not a supported image.")
		return
	}

	var info models.PersonalInformation
	if err := h.db.Where("user_id = ?", userID).First(&info).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "No profile found")
		return
	}

	path := storage.NewUploadPath("profile_images", "img.webp")

	ctx := c.Request.Context()
	if err := h.files.Save(ctx, path, normalized, "image/webp"); err != nil {
		httperr.Internal(c, "failed_to_store_image", "Something went wrong.")
		return
	}

	oldPath := info.ProfileImg
	if err := h.db.Model(&info).Update("profile_img", path).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Something went wrong.")
		return
	}

	deleteOldFile(ctx, h.files, oldPath)

	httpresp.MessageData(c, "Profile image updated successfully", gin.H{
		"image_url": h.config.FileURL(path),
	})
}

// ======================================================
// USERS BY ROLE
// ======================================================

func (h *PersonalInfoHandler) UsersByRole(c *gin.Context) {
	role := c.Query("role")

	var records []models.PersonalInformation
	if err := h.db.Where("role = ?", role).Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Something went wrong.")
		return
	}

	httpresp.OK(c, h.decorate(records))
}

func (h *PersonalInfoHandler) decorate(records []models.PersonalInformation) []models.PersonalInformation {
	out := make([]models.PersonalInformation, len(records))
	for i, rec := range records {
		if rec.ProfileImg != "" {
			rec.ProfileImg = h.config.FileURL(rec.ProfileImg)
		}
		out[i] = rec
	}
	return out
}
