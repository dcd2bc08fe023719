package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"saccoreg/internal/auth"
	"saccoreg/internal/config"
	"saccoreg/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	publicHandler *handler.PublicHandler,
	authHandler *handler.AuthHandler,
	memberHandler *handler.MemberHandler,
	bulkHandler *handler.BulkHandler,
	correctionHandler *handler.CorrectionHandler,
	auditHandler *handler.AuditHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/search", publicHandler.Search)
	api.POST("/verify-details", publicHandler.VerifyDetails)
	api.POST("/submit-correction", publicHandler.SubmitCorrection)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/change-password", authHandler.ChangePassword)

	admin := secured.Group("/admin")

	// Member registry routes
	members := admin.Group("/members", auth.RequirePermission(auth.PermManageMembers))
	members.GET("", memberHandler.List)
	members.POST("", memberHandler.Create)
	members.GET("/export", memberHandler.Export)
	members.POST("/bulk-upload", bulkHandler.BulkUpload)
	members.POST("/bulk-update", bulkHandler.BulkUpdate)
	members.POST("/bulk-update-json", bulkHandler.BulkUpdateJSON)
	members.POST("/bulk-delete", memberHandler.BulkDelete)
	members.GET("/:id", memberHandler.Get)
	members.PUT("/:id", memberHandler.Update)
	members.DELETE("/:id", memberHandler.Delete)

	// Audit routes
	admin.GET("/verifications", auditHandler.ListVerifications,
		auth.RequirePermission(auth.PermViewVerifications))
	admin.GET("/search-logs", auditHandler.ListSearchLogs,
		auth.RequirePermission(auth.PermViewSearchLogs))

	// Correction routes
	admin.GET("/corrections", correctionHandler.List,
		auth.RequirePermission(auth.PermViewCorrections))
	admin.PUT("/corrections/:id/resolve", correctionHandler.Resolve,
		auth.RequirePermission(auth.PermManageCorrections))
	admin.GET("/corrections/export.pdf", correctionHandler.ExportPDF,
		auth.RequirePermission(auth.PermManageCorrections))

	// User management routes
	users := admin.Group("/users", auth.RequirePermission(auth.PermManageUsers))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Deactivate)

	admin.GET("/roles", userHandler.Roles,
		auth.RequirePermission(auth.PermManageUsers))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
