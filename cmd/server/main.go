package main

import (
	"log"
	"net/http"
	"os"

	_ "saccoreg/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"saccoreg/internal/auth"
	"saccoreg/internal/cache"
	"saccoreg/internal/config"
	"saccoreg/internal/db"
	"saccoreg/internal/handler"
	"saccoreg/internal/mail"
	"saccoreg/internal/model"
	"saccoreg/internal/repository"
	"saccoreg/internal/router"
	"saccoreg/internal/service"
)

// @title Membership Registry API
// @version 1.0
// @description Membership registry for a savings cooperative: member management, bulk spreadsheet import, public search and verification, correction workflow, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.SearchLog{},
			&model.Verification{},
			&model.CorrectionRequest{},
			&model.Member{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Member{},
		&model.Verification{},
		&model.CorrectionRequest{},
		&model.SearchLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	verificationRepo := repository.NewVerificationRepository(gormDB)
	correctionRepo := repository.NewCorrectionRepository(gormDB)
	searchLogRepo := repository.NewSearchLogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	mailer := mail.New(cfg)
	if mailer.Enabled() {
		log.Printf("correction notifications enabled via %s", cfg.SMTPHost)
	} else {
		log.Println("SMTP_HOST not set, correction notifications disabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	memberService := service.NewMemberService(memberRepo, cacheClient)
	reconcileService := service.NewReconcileService(memberRepo, cacheClient)
	publicService := service.NewPublicService(memberRepo, verificationRepo, correctionRepo, searchLogRepo, cacheClient, mailer)
	correctionService := service.NewCorrectionService(correctionRepo)
	auditService := service.NewAuditService(verificationRepo, searchLogRepo)
	exportService := service.NewExportService(memberRepo, correctionRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	publicHandler := handler.NewPublicHandler(publicService)
	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService, exportService)
	bulkHandler := handler.NewBulkHandler(reconcileService)
	correctionHandler := handler.NewCorrectionHandler(correctionService, exportService)
	auditHandler := handler.NewAuditHandler(auditService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		publicHandler,
		authHandler,
		memberHandler,
		bulkHandler,
		correctionHandler,
		auditHandler,
		userHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
