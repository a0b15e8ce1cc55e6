package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "backend/api/swagger" // swagger docs
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/mail"
	"backend/internal/middleware"
	"backend/internal/notify"
	"backend/internal/repository"
	"backend/internal/service"
)

// @title           MyPorto CRM API
// @version         1.0
// @description     Multi-tenant business administration backend with role-privilege access control.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	db, err := database.NewConnection(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	if err := database.Seed(db, cfg.Admin); err != nil {
		log.Fatalf("Database seed failed: %v", err)
	}

	// Set up notification Hub
	hub := notify.NewHub()
	go hub.Run()

	mailer := mail.NewSMTPMailer(cfg.SMTP)
	issuer := service.NewTokenIssuer(cfg.PrivateKey, cfg.TokenTTL)

	// Set up dependencies (Repository -> Service -> Handler)
	employeeRepo := repository.NewEmployeeRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	lookupRepo := repository.NewLookupRepository(db)

	authService := service.NewAuthService(employeeRepo, issuer, mailer)
	roleService := service.NewRoleService(roleRepo, hub)
	catalogService := service.NewCatalogService(catalogRepo, hub)
	employeeService := service.NewEmployeeService(employeeRepo, mailer)
	customerService := service.NewCustomerService(customerRepo)
	unitService := service.NewUnitService(unitRepo)
	definitionService := service.NewDefinitionService(lookupRepo)

	authHandler := handler.NewAuthHandler(authService)
	roleHandler := handler.NewRoleHandler(roleService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	customerHandler := handler.NewCustomerHandler(customerService)
	unitHandler := handler.NewUnitHandler(unitService)
	definitionHandler := handler.NewDefinitionHandler(definitionService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "Accept-Language"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Language resolution applies to every route
	router.Use(middleware.ResolveLanguage())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for access-control change events
	router.GET("/ws", func(c *gin.Context) {
		notify.ServeWs(hub, c, cfg.PublicKey)
	})

	// Authentication middleware shared by all protected routes
	authn := middleware.Authenticate(cfg.PublicKey, employeeRepo)

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""), authn)
	roleHandler.RegisterRoutes(router.Group(""), authn)
	catalogHandler.RegisterRoutes(router.Group(""), authn)
	employeeHandler.RegisterRoutes(router.Group(""), authn)
	customerHandler.RegisterRoutes(router.Group(""), authn)
	unitHandler.RegisterRoutes(router.Group(""), authn)
	definitionHandler.RegisterRoutes(router.Group(""), authn)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
