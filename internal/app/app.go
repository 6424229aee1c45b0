package app

import (
	"database/sql"
	"fmt"
	"log"

	"sellora/internal/catalog"
	"sellora/internal/config"
	"sellora/internal/handlers"
	"sellora/internal/repositories"
	"sellora/internal/routes"
	"sellora/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sellora/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("DB close error: %v", err)
		}
	}()

	// === Repos ===
	accountRepo := repositories.NewAccountRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	tokenService := services.NewTokenService(roleRepo, cfg.JWT)
	accountService := services.NewAccountService(
		accountRepo,
		roleRepo,
		verificationRepo,
		emailService,
		authService,
		tokenService,
		cfg.RegistrationCodeTTL(),
		cfg.RecoveryCodeTTL(),
	)

	// клиент продуктового сервиса; секрет подписи у сервисов общий,
	// каталог проверяет форварднутый токен сам
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.CatalogTimeout(), accountRepo)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(accountService, tokenService)
	userHandler := handlers.NewUserHandler(accountService)
	proxyHandler := handlers.NewProductProxyHandler(catalogClient)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.JWT.Secret),
		authHandler,
		userHandler,
		proxyHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Server start error: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
