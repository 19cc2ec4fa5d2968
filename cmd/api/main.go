package main

import (
	_ "hrms-backend/api/swagger" // swagger docs
	"hrms-backend/internal/config"
	"hrms-backend/internal/database"
	"hrms-backend/internal/handler"
	"hrms-backend/internal/mailer"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/service"
	"hrms-backend/internal/storage"
	"hrms-backend/internal/token"
	"hrms-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           HRMS API
// @version         1.0
// @description     Employee management backend: accounts, approval workflow, lookup tables, personal records and documents.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load("configs/.env"); err != nil {
		log.Info("no configs/.env file found, using environment")
	}

	cfg := config.Load()
	if cfg.Environment == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	log.Info("connected to postgres")

	// WebSocket hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	tokens := token.NewService(cfg.JWT)
	mail := mailer.NewSMTPMailer(cfg.SMTP, log)
	store := storage.NewStore(cfg.UploadDir)

	// Repository -> Service -> Handler
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	masterRepo := repository.NewMasterRepository(db)
	detailsRepo := repository.NewPersonalDetailsRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	authService := service.NewAuthService(userRepo, tokens, mail, log)
	userService := service.NewUserService(userRepo, mail, cfg.FrontendBaseURL, log)
	requestService := service.NewRequestService(requestRepo, userRepo, masterRepo, store, mail, wsHub, log)
	masterService := service.NewMasterService(masterRepo)
	detailsService := service.NewPersonalDetailsService(detailsRepo, userRepo)
	documentService := service.NewDocumentService(documentRepo, userRepo, store, cfg.FileBaseURL, log)

	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	userHandler := handler.NewUserHandler(authService, userService, authMiddleware)
	requestHandler := handler.NewRequestHandler(requestService, authMiddleware)
	masterHandler := handler.NewMasterHandler(masterService, authMiddleware)
	detailsHandler := handler.NewPersonalDetailsHandler(detailsService, authMiddleware)
	documentHandler := handler.NewDocumentHandler(documentService, authMiddleware)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, tokens)
	})

	// Uploaded files are served read-only under /api/files
	router.Static("/api/files", cfg.UploadDir)

	userHandler.RegisterRoutes(router.Group("/api/employee"))
	requestHandler.RegisterRoutes(router.Group("/api/request"))
	masterHandler.RegisterRoutes(router.Group("/api/master"))
	detailsHandler.RegisterRoutes(router.Group("/api/personal-details"))
	documentHandler.RegisterRoutes(router.Group("/api/document"))

	log.WithField("port", cfg.Port).Info("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}
