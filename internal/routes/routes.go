package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ChiniHendi2004/appointment-api/internal/audit"
	"github.com/ChiniHendi2004/appointment-api/internal/cache"
	"github.com/ChiniHendi2004/appointment-api/internal/config"
	"github.com/ChiniHendi2004/appointment-api/internal/handlers"
	infraRepo "github.com/ChiniHendi2004/appointment-api/internal/infra/repository"
	"github.com/ChiniHendi2004/appointment-api/internal/middleware"
	"github.com/ChiniHendi2004/appointment-api/internal/slots"
	"github.com/ChiniHendi2004/appointment-api/internal/storage"
	ucBooking "github.com/ChiniHendi2004/appointment-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	files storage.FileStore,
	rdb *redis.Client,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.NewAvailability(rdb)
	catalog := slots.FromConfig(cfg.SlotCatalog)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	bookSlotUC := ucBooking.NewBookSlot(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	setUnavailabilityUC := ucBooking.NewSetUnavailability(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		catalog,
		availabilityCache,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		cfg,
		bookSlotUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		setUnavailabilityUC,
		getAvailabilityUC,
	)

	personalInfoHandler := handlers.NewPersonalInfoHandler(db, cfg, files)
	educationHandler := handlers.NewEducationHandler(db, cfg, files)
	workInfoHandler := handlers.NewWorkInfoHandler(db)
	businessHandler := handlers.NewBusinessHandler(db, cfg, files)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// PROTECTED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/user", meHandler.GetMe)
			secured.POST("/logout", meHandler.Logout)
			secured.GET("/fetch-profile", meHandler.FetchProfile)

			// ------------------------------
			// PERSONAL INFO
			// ------------------------------
			secured.GET("/personal-info/get", personalInfoHandler.Fetch)
			secured.GET("/personal-info/list", personalInfoHandler.List)
			secured.POST("/personal-info/create", personalInfoHandler.CreateOrUpdate)
			secured.POST("/personal-info/update/:id", personalInfoHandler.CreateOrUpdate)
			secured.POST("/edit-profile/img", personalInfoHandler.UpdateProfileImage)
			secured.GET("/users-by-role", personalInfoHandler.UsersByRole)

			// ------------------------------
			// EDUCATION / WORK / BUSINESS
			// ------------------------------
			secured.POST("/education-info/create", educationHandler.SaveOrUpdate)
			secured.GET("/education-info/get", educationHandler.Get)

			secured.GET("/work-info/get", workInfoHandler.Fetch)
			secured.POST("/work-info/create", workInfoHandler.CreateOrUpdate)

			secured.GET("/business-info", businessHandler.Fetch)
			secured.POST("/business-info", businessHandler.StoreOrUpdate)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			secured.POST("/set-unavailability", availabilityHandler.SetUnavailability)
			secured.GET("/get-available-slots/:date", availabilityHandler.GetAvailableSlots)
			secured.GET("/get-slots/:date", availabilityHandler.GetSlots)

			// ------------------------------
			// BOOKING
			// ------------------------------
			secured.POST("/book-slot", bookingHandler.BookSlot)
			secured.POST("/cancel-appointment", bookingHandler.CancelAppointment)
			secured.GET("/user-appointments", bookingHandler.UserAppointments)
			secured.GET("/my-appointments", bookingHandler.MyAppointments)
			secured.GET("/today-appointments", bookingHandler.TodayAppointments)
		}
	}
}
