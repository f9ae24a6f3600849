package main

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/manantri/campusfest/internal/config"
	"github.com/manantri/campusfest/internal/handler"
	"github.com/manantri/campusfest/internal/middleware"
	"github.com/manantri/campusfest/internal/model"
	"github.com/manantri/campusfest/internal/repository"
	"github.com/manantri/campusfest/internal/service"
	"github.com/manantri/campusfest/pkg/database"
	"github.com/manantri/campusfest/pkg/storage"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.Connect(cfg.DatabaseURL)
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	if err := seedAdminUser(userRepo, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	imageStorage, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	var meiliClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		meiliClient = meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}

	eventRepo := repository.NewEventRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	searchSvc := service.NewSearchService(meiliClient)

	syncSvc := service.NewSyncService(userRepo)
	userHandler := handler.NewUserHandler(syncSvc)

	eventSvc := service.NewEventService(eventRepo, userRepo, imageStorage, searchSvc)
	eventHandler := handler.NewEventHandler(eventSvc, searchSvc)

	ticketSvc := service.NewTicketService(eventRepo, ticketRepo, userRepo, redisClient)
	ticketHandler := handler.NewTicketHandler(ticketSvc)

	adminSvc := service.NewAdminService(userRepo)
	adminHandler := handler.NewAdminHandler(adminSvc)

	router := gin.New()
	setupCORS(router, cfg)
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	// Public reads: anyone may browse events.
	event := router.Group("/event")
	{
		event.GET("/getAllEvents", eventHandler.GetAllEvents)
		event.POST("/getSingleEvent", eventHandler.GetSingleEvent)
		event.POST("/getEventsByCategory", eventHandler.GetEventsByCategory)
		event.GET("/searchToken", eventHandler.SearchToken)
	}

	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/sync-user", userHandler.SyncUser)

		ev := protected.Group("/event")
		{
			ev.POST("/createEvent", eventHandler.CreateEvent)
			ev.POST("/updateEvent", eventHandler.UpdateEvent)
			ev.POST("/deleteEvent", eventHandler.DeleteEvent)
			ev.POST("/getAllUserEvents", eventHandler.GetMyEvents)
			ev.POST("/getParticipatedEvents", eventHandler.GetParticipatedEvents)

			ev.POST("/registerEvent", ticketHandler.RegisterEvent)
			ev.POST("/getTicket", ticketHandler.GetTicket)
			ev.POST("/verifyTicket", ticketHandler.VerifyTicket)
			ev.GET("/ticketQR", ticketHandler.TicketQR)
		}

		admin := protected.Group("/admin")
		{
			admin.POST("/sendrequest", adminHandler.SendRequest)
			admin.GET("/sendrequest", adminHandler.ListPendingRequests)
			admin.POST("/approvecollegelead", adminHandler.ApproveCollegeLead)
			admin.POST("/isCollegeLead", adminHandler.IsCollegeLead)

			gated := admin.Group("")
			gated.Use(authMiddleware.RequireAdmin())
			{
				gated.POST("/removeUser", adminHandler.RemoveUser)
				gated.GET("/getAllUsersData", adminHandler.GetAllUsersData)
			}
		}
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Ticket{},
	)
}

// seedAdminUser creates the fixed admin account that reviews lead requests.
func seedAdminUser(users repository.UserRepository, cfg *config.Config) error {
	ctx := context.Background()

	_, err := users.FindByIdentity(ctx, cfg.AdminIdentityID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := model.User{
		IdentityID: cfg.AdminIdentityID,
		Email:      cfg.AdminEmail,
		Role:       model.RoleAdmin,
		IsAdmin:    true,
	}
	if err := users.Create(ctx, &admin); err != nil {
		return err
	}

	log.Printf("Admin user seeded (%s)", cfg.AdminEmail)
	return nil
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
