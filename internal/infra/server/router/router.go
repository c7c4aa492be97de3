// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hexapixel/backend/internal/domain/entity"
	"github.com/hexapixel/backend/internal/integration/entrypoint/controller"
	"github.com/hexapixel/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	incomeItemController  *controller.ItemController
	outcomeItemController *controller.ItemController
	incomeController      *controller.TransactionController
	outcomeController     *controller.TransactionController
	summaryController     *controller.SummaryController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	uploadDir             string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	incomeItemController *controller.ItemController,
	outcomeItemController *controller.ItemController,
	incomeController *controller.TransactionController,
	outcomeController *controller.TransactionController,
	summaryController *controller.SummaryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	uploadDir string,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		incomeItemController:  incomeItemController,
		outcomeItemController: outcomeItemController,
		incomeController:      incomeController,
		outcomeController:     outcomeController,
		summaryController:     summaryController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		uploadDir:             uploadDir,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)
	r.engine.Static("/uploads", r.uploadDir)

	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")

	authenticated := r.authMiddleware.Authenticate()
	elevated := r.authMiddleware.RequireElevated()

	// User and auth routes. Registration is open but only succeeds once.
	users := api.Group("/users")
	{
		users.POST("/register", r.authController.Register)
		users.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		users.POST("/logout", authenticated, r.authController.Logout)
		users.GET("/me", authenticated, r.userController.Me)
		users.PUT("/password", authenticated, r.authController.ChangePassword)

		users.POST("", authenticated, elevated, r.userController.Create)
		users.GET("", authenticated, elevated, r.userController.List)
		users.GET("/:id", authenticated, elevated, r.userController.Get)
		users.PUT("/:id", authenticated, elevated, r.userController.Update)
		users.DELETE("/:id", authenticated, elevated, r.userController.Delete)
		users.PUT("/:id/password", authenticated, elevated, r.userController.ResetPassword)
	}

	// Catalog routes, one group per kind.
	r.setupItemRoutes(api.Group("/item-incomes", authenticated), r.incomeItemController)
	r.setupItemRoutes(api.Group("/item-outcomes", authenticated), r.outcomeItemController)

	// Transaction routes, one group per kind.
	r.setupTransactionRoutes(api.Group("/incomes", authenticated), r.incomeController)
	r.setupTransactionRoutes(api.Group("/outcomes", authenticated), r.outcomeController)

	// Dashboard reporting routes.
	dashboard := api.Group("/dashboard", authenticated)
	{
		dashboard.GET("/income/summary/:type", r.summaryController.TotalSummary(entity.KindIncome))
		dashboard.GET("/outcome/summary/:type", r.summaryController.TotalSummary(entity.KindOutcome))
		dashboard.GET("/income/count-summary/:type", r.summaryController.CountSummary(entity.KindIncome))
		dashboard.GET("/outcome/count-summary/:type", r.summaryController.CountSummary(entity.KindOutcome))
		dashboard.GET("/income/top-items/:type", r.summaryController.TopItems(entity.KindIncome))
		dashboard.GET("/outcome/top-items/:type", r.summaryController.TopItems(entity.KindOutcome))
		dashboard.GET("/daily/:type", r.summaryController.DailyChart)
		dashboard.GET("/income/latest-clients", r.summaryController.LatestClients)
	}
}

// setupItemRoutes registers the catalog CRUD routes on one group.
func (r *Router) setupItemRoutes(group *gin.RouterGroup, c *controller.ItemController) {
	group.GET("", c.List)
	group.POST("", c.Create)
	group.PUT("/:id", c.Update)
	group.DELETE("/:id", c.Delete)
}

// setupTransactionRoutes registers the transaction routes on one group. The
// export route is registered before the :id route so "export" never parses as
// an ID.
func (r *Router) setupTransactionRoutes(group *gin.RouterGroup, c *controller.TransactionController) {
	group.GET("", c.List)
	group.POST("", c.Create)
	group.GET("/export/:type", c.Export)
	group.GET("/:id", c.Get)
	group.PUT("/:id", c.Update)
	group.DELETE("/:id", c.Delete)
}
