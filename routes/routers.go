package routes

import (
	"context"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/config"
	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/controllers"
	middlewares "github.com/DC-NERI/innWise-sub001/middleware"
	"github.com/DC-NERI/innWise-sub001/services"
	"github.com/DC-NERI/innWise-sub001/services/logger"
	"github.com/DC-NERI/innWise-sub001/services/notification"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) *services.NotificationService {

	notificationSvc := services.NewNotificationService(db, notification.NewMelodyService(m), logger.NewDefaultLogger(logger.InfoLevel))

	authController := controllers.NewAuthController(db)
	reservationController := controllers.NewReservationController(db, redisCli, notificationSvc)
	roomController := controllers.NewRoomController(db, redisCli)
	rateController := controllers.NewRateController(db, redisCli)
	housekeepingController := controllers.NewHousekeepingController(db, redisCli)
	adminController := controllers.NewAdminController(db)
	ticketController := controllers.NewTicketController(db)
	lostFoundController := controllers.NewLostFoundController(db)
	notificationController := controllers.NewNotificationController(notificationSvc)

	sysAd := constants.RoleSysAd
	tenantAdmin := constants.RoleTenantAdmin
	branchAdmin := constants.RoleBranchAdmin
	staff := constants.RoleStaff

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.GET("/users", middlewares.AuthMiddleware(sysAd, tenantAdmin), authController.GetUsers)
	v1.POST("/users", middlewares.AuthMiddleware(sysAd, tenantAdmin), authController.CreateUser)
	v1.PUT("/users", middlewares.AuthMiddleware(sysAd, tenantAdmin, branchAdmin), authController.UpdateUser)

	v1.GET("/tenants", middlewares.AuthMiddleware(sysAd), adminController.GetTenants)
	v1.POST("/tenants", middlewares.AuthMiddleware(sysAd), adminController.CreateTenant)
	v1.PUT("/tenants", middlewares.AuthMiddleware(sysAd), adminController.UpdateTenant)
	v1.GET("/branches", middlewares.AuthMiddleware(sysAd, tenantAdmin), adminController.GetBranches)
	v1.POST("/branches", middlewares.AuthMiddleware(sysAd, tenantAdmin), adminController.CreateBranch)
	v1.PUT("/branches", middlewares.AuthMiddleware(sysAd, tenantAdmin), adminController.UpdateBranch)
	v1.GET("/audit", middlewares.AuthMiddleware(sysAd, tenantAdmin), adminController.GetAuditLogs)

	v1.GET("/rooms", middlewares.AuthMiddleware(), roomController.GetRoomBoard)
	v1.GET("/rooms/:id", middlewares.AuthMiddleware(), roomController.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(tenantAdmin, branchAdmin), roomController.CreateRoom)
	v1.PUT("/rooms", middlewares.AuthMiddleware(tenantAdmin, branchAdmin), roomController.UpdateRoom)

	v1.GET("/rates", middlewares.AuthMiddleware(), rateController.GetAllRates)
	v1.GET("/rates/:id", middlewares.AuthMiddleware(), rateController.GetRateDetail)
	v1.POST("/rates", middlewares.AuthMiddleware(tenantAdmin, branchAdmin), rateController.CreateRate)
	v1.PUT("/rates", middlewares.AuthMiddleware(tenantAdmin, branchAdmin), rateController.UpdateRate)

	v1.GET("/reservations", middlewares.AuthMiddleware(), reservationController.GetReservations)
	v1.GET("/reservations/search", middlewares.AuthMiddleware(), reservationController.SearchReservations)
	v1.GET("/reservations/:id", middlewares.AuthMiddleware(), reservationController.GetReservation)
	v1.POST("/reservations", middlewares.AuthMiddleware(tenantAdmin, branchAdmin, staff), reservationController.CreateReservation)
	v1.PUT("/reservations", middlewares.AuthMiddleware(tenantAdmin, branchAdmin, staff), reservationController.UpdateReservation)
	v1.POST("/reservations/accept", middlewares.AuthMiddleware(branchAdmin, staff), reservationController.AcceptReservation)
	v1.POST("/reservations/decline", middlewares.AuthMiddleware(branchAdmin, staff), reservationController.DeclineReservation)
	v1.POST("/reservations/assign", middlewares.AuthMiddleware(branchAdmin, staff), reservationController.AssignRoom)
	v1.POST("/reservations/checkin", middlewares.AuthMiddleware(branchAdmin, staff), reservationController.CheckIn)
	v1.POST("/reservations/checkout", middlewares.AuthMiddleware(branchAdmin, staff), reservationController.CheckOut)
	v1.POST("/reservations/cancel", middlewares.AuthMiddleware(branchAdmin, staff), reservationController.CancelReservation)

	v1.GET("/housekeeping", middlewares.AuthMiddleware(), housekeepingController.GetBranchOverview)
	v1.GET("/housekeeping/rooms/:id", middlewares.AuthMiddleware(), housekeepingController.GetRoomHistory)
	v1.PUT("/housekeeping", middlewares.AuthMiddleware(branchAdmin, staff), housekeepingController.SetCleaningStatus)

	v1.GET("/tickets", middlewares.AuthMiddleware(), ticketController.GetTickets)
	v1.GET("/tickets/:id", middlewares.AuthMiddleware(), ticketController.GetTicketDetail)
	v1.POST("/tickets", middlewares.AuthMiddleware(), ticketController.CreateTicket)
	v1.PUT("/tickets", middlewares.AuthMiddleware(tenantAdmin, branchAdmin), ticketController.UpdateTicket)

	v1.GET("/lostfound", middlewares.AuthMiddleware(), lostFoundController.GetItems)
	v1.POST("/lostfound", middlewares.AuthMiddleware(branchAdmin, staff), lostFoundController.LogItem)
	v1.PUT("/lostfound", middlewares.AuthMiddleware(branchAdmin, staff), lostFoundController.UpdateItem)

	v1.GET("/notifications", middlewares.AuthMiddleware(), notificationController.GetNotifications)
	v1.PUT("/notifications/:id/read", middlewares.AuthMiddleware(), notificationController.MarkRead)

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	return notificationSvc
}
