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

type EducationHandler struct {
	db     *gorm.DB
	config *config.Config
	files  storage.FileStore
}

func NewEducationHandler(db *gorm.DB, cfg *config.Config, files storage.FileStore) *EducationHandler {
	return &EducationHandler{db: db, config: cfg, files: files}
}

// SaveOrUpdate takes multipart form data: qualification and
// institute_specialization are required, "file" (pdf or image) optional.
func (h *EducationHandler) SaveOrUpdate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	qualification := c.PostForm("qualification")
	specialization := c.PostForm("institute_specialization")
	if qualification == "" || specialization == "" {
		httperr.BadRequest(c, "invalid_request", "qualification and institute_specialization are required.")
		return
	}

	ctx := c.Request.Context()

	var existing models.EducationalInformation
	found := h.db.Where("user_id = ?", userID).First(&existing).Error == nil

	filePath := existing.FilePath
	oldPath := ""

	if fh, err := c.FormFile("file"); err == nil {
		newPath, err := saveUpload(ctx, h.files, "education_files", fh)
		if err != nil {
			httperr.Internal(c, "failed_to_store_file", "Something went wrong.")
			return
		}
		oldPath = filePath
		filePath = newPath
	}

	if found {
		err := h.db.Model(&existing).Updates(map[string]any{
			"qualification":            qualification,
			"institute_specialization": specialization,
			"file_path":                filePath,
		}).Error
		if err != nil {
			httperr.Internal(c, "failed_to_update", "Something went wrong.")
			return
		}

		deleteOldFile(ctx, h.files, oldPath)

		httpresp.MessageData(c, "Updated successfully", gin.H{
			"file_url": h.fileURL(filePath),
		})
		return
	}

	info := models.EducationalInformation{
		UserID:                  userID,
		Qualification:           qualification,
		InstituteSpecialization: specialization,
		FilePath:                filePath,
	}

	if err := h.db.Create(&info).Error; err != nil {
		httperr.Internal(c, "failed_to_insert", "Something went wrong.")
		return
	}

	httpresp.MessageData(c, "Inserted successfully", gin.H{
		"id":       info.ID,
		"file_url": h.fileURL(filePath),
	})
}

func (h *EducationHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var info models.EducationalInformation
	if err := h.db.Where("user_id = ?", userID).First(&info).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httpresp.MessageData(c, "Data fetched successfully", nil)
			return
		}
		httperr.Internal(c, "failed_to_fetch", "Something went wrong.")
		return
	}

	httpresp.MessageData(c, "Data fetched successfully", gin.H{
		"id":                       info.ID,
		"qualification":            info.Qualification,
		"institute_specialization": info.InstituteSpecialization,
		"file_url":                 h.fileURL(info.FilePath),
		"created_at":               info.CreatedAt,
	})
}

func (h *EducationHandler) fileURL(path string) any {
	if path == "" {
		return nil
	}
	return h.config.FileURL(path)
}
