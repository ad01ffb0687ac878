package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ChiniHendi2004/appointment-api/internal/config"
	"github.com/ChiniHendi2004/appointment-api/internal/httperr"
	"github.com/ChiniHendi2004/appointment-api/internal/httpresp"
	"github.com/ChiniHendi2004/appointment-api/internal/middleware"
	"github.com/ChiniHendi2004/appointment-api/internal/models"
)

type MeHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewMeHandler(db *gorm.DB, cfg *config.Config) *MeHandler {
	return &MeHandler{db: db, config: cfg}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "User not found")
		return
	}

	httpresp.OK(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// FetchProfile returns only the display name and image for the caller.
func (h *MeHandler) FetchProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var info models.PersonalInformation
	if err := h.db.
		Select("full_name", "profile_img").
		Where("user_id = ?", userID).
		First(&info).Error; err != nil {

		httperr.NotFound(c, "profile_not_found", "No profile found")
		return
	}

	httpresp.OK(c, gin.H{
		"full_name":   info.FullName,
		"profile_img": h.config.FileURL(info.ProfileImg),
	})
}

// Logout exists for client symmetry; tokens are stateless and simply
// expire, nothing is invalidated server-side.
func (h *MeHandler) Logout(c *gin.Context) {
	httpresp.Message(c, "Successfully logged out")
}
