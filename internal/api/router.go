package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/api/handlers"
	"github.com/Lumora-KR/rps-server/internal/api/middleware"
	"github.com/Lumora-KR/rps-server/internal/cache"
	"github.com/Lumora-KR/rps-server/internal/config"
	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/services"
	"github.com/Lumora-KR/rps-server/internal/storage"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, mailer email.Mailer, store storage.Storage, disk *storage.DiskStorage, responseCache *cache.Cache) *gin.Engine {
	carRentalDetailService := services.NewCarRentalDetailService(db, mailer)
	tourPackageDetailService := services.NewTourPackageDetailService(db, mailer)
	hotelEnquiryService := services.NewHotelEnquiryService(db, mailer)
	contactFormService := services.NewContactFormService(db, mailer)
	homeEnquiryService := services.NewHomeEnquiryService(db, mailer)
	carRentalService := services.NewCarRentalService(db, mailer)
	hotelService := services.NewHotelService(db, mailer)
	uploadService := services.NewUploadService(db, store, cfg.ImageMaxDimension)
	userService := services.NewUserService(db, cfg)
	dashboardService := services.NewDashboardService(db)

	r := gin.Default()

	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	r.Use(middleware.CORSMiddleware())

	carRentalDetailHandler := handlers.NewCarRentalDetailHandler(carRentalDetailService)
	tourPackageDetailHandler := handlers.NewTourPackageDetailHandler(tourPackageDetailService)
	hotelEnquiryHandler := handlers.NewHotelEnquiryHandler(hotelEnquiryService)
	contactFormHandler := handlers.NewContactFormHandler(contactFormService)
	homeEnquiryHandler := handlers.NewHomeEnquiryHandler(homeEnquiryService)
	carRentalHandler := handlers.NewCarRentalHandler(carRentalService, uploadService)
	hotelHandler := handlers.NewHotelHandler(hotelService, uploadService)
	tourPackagesHandler := handlers.NewTourPackagesHandler(mailer)
	authHandler := handlers.NewAuthHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, responseCache)
	imageHandler := handlers.NewImageHandler(uploadService, disk)

	authRequired := middleware.AuthMiddleware(cfg.JwtSecret)
	submitLimited := rateLimiter.Limit()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/user", authRequired, authHandler.CurrentUser)
	}

	carDetail := r.Group("/api/car-rental-detail")
	{
		carDetail.POST("", submitLimited, carRentalDetailHandler.Create)
		carDetail.GET("", carRentalDetailHandler.List)
		carDetail.GET("/chart", carRentalDetailHandler.Chart)
		carDetail.GET("/stats/chart", carRentalDetailHandler.Chart)
		carDetail.GET("/:id", carRentalDetailHandler.Get)
		carDetail.PUT("/:id", carRentalDetailHandler.Update)
		carDetail.DELETE("/:id", carRentalDetailHandler.Delete)
	}

	tourDetail := r.Group("/api/tour-package-detail")
	{
		tourDetail.POST("", submitLimited, tourPackageDetailHandler.Create)
		tourDetail.GET("", tourPackageDetailHandler.List)
		tourDetail.GET("/chart", tourPackageDetailHandler.Chart)
		tourDetail.GET("/stats/chart", tourPackageDetailHandler.Chart)
		tourDetail.GET("/:id", tourPackageDetailHandler.Get)
		tourDetail.PUT("/:id", tourPackageDetailHandler.Update)
		tourDetail.DELETE("/:id", tourPackageDetailHandler.Delete)
	}

	// The public site posts hotel booking enquiries to /api/hotels while the
	// admin panel manages them at /api/hotel-enquiries.
	for _, base := range []string{"/api/hotels", "/api/hotel-enquiries"} {
		g := r.Group(base)
		g.POST("", submitLimited, hotelEnquiryHandler.Create)
		g.GET("", hotelEnquiryHandler.List)
		g.GET("/chart", hotelEnquiryHandler.Chart)
		g.GET("/stats/chart", hotelEnquiryHandler.Chart)
		g.GET("/:id", hotelEnquiryHandler.Get)
		g.PUT("/:id", hotelEnquiryHandler.Update)
		g.DELETE("/:id", hotelEnquiryHandler.Delete)
	}

	contact := r.Group("/api/contact")
	{
		contact.POST("", submitLimited, contactFormHandler.Create)
		contact.GET("", contactFormHandler.List)
		contact.GET("/chart", contactFormHandler.Chart)
		contact.GET("/stats/chart", contactFormHandler.Chart)
		contact.GET("/:id", contactFormHandler.Get)
		contact.PUT("/:id", contactFormHandler.Update)
		contact.DELETE("/:id", contactFormHandler.Delete)
	}

	homeEnquiries := r.Group("/api/home-enquiries")
	{
		homeEnquiries.POST("", submitLimited, homeEnquiryHandler.Create)
		homeEnquiries.GET("", homeEnquiryHandler.List)
		homeEnquiries.GET("/chart", homeEnquiryHandler.Chart)
		homeEnquiries.GET("/chart/:type", homeEnquiryHandler.Chart)
		homeEnquiries.GET("/:type", homeEnquiryHandler.GetOrListByType)
		homeEnquiries.PUT("/:id", homeEnquiryHandler.Update)
		homeEnquiries.DELETE("/:id", homeEnquiryHandler.Delete)
	}

	r.POST("/api/tour-packages", submitLimited, tourPackagesHandler.Create)

	carRentals := r.Group("/api/car-rentals")
	{
		carRentals.POST("", submitLimited, carRentalHandler.Create)
		carRentals.GET("", carRentalHandler.List)
		carRentals.GET("/chart", carRentalHandler.Chart)
		carRentals.GET("/:id", carRentalHandler.Get)
		carRentals.PUT("/:id", carRentalHandler.Update)
		carRentals.DELETE("/:id", carRentalHandler.Delete)
	}

	hotelsList := r.Group("/api/hotels-list")
	{
		hotelsList.POST("", submitLimited, hotelHandler.Create)
		hotelsList.GET("", hotelHandler.List)
		hotelsList.GET("/chart", hotelHandler.Chart)
		hotelsList.GET("/:id", hotelHandler.Get)
		hotelsList.PUT("/:id", hotelHandler.Update)
		hotelsList.DELETE("/:id", hotelHandler.Delete)
	}

	dashboard := r.Group("/api/dashboard")
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/chart-data", dashboardHandler.ChartData)
		dashboard.GET("/recent-activity", dashboardHandler.RecentActivity)
		dashboard.GET("/quick-stats", dashboardHandler.QuickStats)
		dashboard.GET("/welcome", authRequired, dashboardHandler.Welcome)
	}

	r.GET("/api/images/:id", imageHandler.Get)

	if disk != nil {
		r.Static("/uploads", cfg.UploadDir)
	}

	return r
}
