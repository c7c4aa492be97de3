// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hexapixel/backend/config"
	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/application/usecase/auth"
	"github.com/hexapixel/backend/internal/application/usecase/item"
	"github.com/hexapixel/backend/internal/application/usecase/summary"
	"github.com/hexapixel/backend/internal/application/usecase/transaction"
	"github.com/hexapixel/backend/internal/application/usecase/user"
	"github.com/hexapixel/backend/internal/domain/entity"
	"github.com/hexapixel/backend/internal/infra/db"
	"github.com/hexapixel/backend/internal/infra/server/router"
	"github.com/hexapixel/backend/internal/infra/storage"
	"github.com/hexapixel/backend/internal/integration/adapters"
	"github.com/hexapixel/backend/internal/integration/entrypoint/controller"
	"github.com/hexapixel/backend/internal/integration/entrypoint/middleware"
	"github.com/hexapixel/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(
	cfg *config.Config,
	database *db.Database,
	redisClient *redis.Client,
) (*Injector, error) {
	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load reporting timezone: %w", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	gormDB := database.DB()

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	itemRepo := persistence.NewItemRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	summaryRepo := persistence.NewSummaryRepository(gormDB)
	sessionStore := persistence.NewSessionStore(redisClient)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry, sessionStore)
	excelExporter := adapters.NewExcelExporter()

	// Create auth use cases
	registerSuperAdminUseCase := auth.NewRegisterSuperAdminUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Create user use cases
	createUserUseCase := user.NewCreateUserUseCase(userRepo, passwordService)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)
	resetPasswordUseCase := user.NewResetPasswordUseCase(userRepo, passwordService)

	// Create item use cases
	createItemUseCase := item.NewCreateItemUseCase(itemRepo)
	listItemsUseCase := item.NewListItemsUseCase(itemRepo)
	updateItemUseCase := item.NewUpdateItemUseCase(itemRepo)
	deleteItemUseCase := item.NewDeleteItemUseCase(itemRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, itemRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, itemRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo, excelExporter, loc)

	// Create summary use cases
	getTotalSummaryUseCase := summary.NewGetTotalSummaryUseCase(summaryRepo, loc)
	getCountSummaryUseCase := summary.NewGetCountSummaryUseCase(summaryRepo, loc)
	getDailyChartUseCase := summary.NewGetDailyChartUseCase(summaryRepo, loc)
	getTopItemsUseCase := summary.NewGetTopItemsUseCase(summaryRepo, loc)
	getLatestActivityUseCase := summary.NewGetLatestActivityUseCase(summaryRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)

	authController := controller.NewAuthController(
		registerSuperAdminUseCase,
		loginUseCase,
		logoutUseCase,
		changePasswordUseCase,
	)

	userController := controller.NewUserController(
		createUserUseCase,
		listUsersUseCase,
		getUserUseCase,
		updateUserUseCase,
		deleteUserUseCase,
		resetPasswordUseCase,
		fileStorage,
		cfg.Server.BaseURL,
	)

	incomeItemController := controller.NewItemController(
		entity.KindIncome,
		createItemUseCase,
		listItemsUseCase,
		updateItemUseCase,
		deleteItemUseCase,
	)
	outcomeItemController := controller.NewItemController(
		entity.KindOutcome,
		createItemUseCase,
		listItemsUseCase,
		updateItemUseCase,
		deleteItemUseCase,
	)

	incomeController := newTransactionController(entity.KindIncome,
		createTransactionUseCase, listTransactionsUseCase, getTransactionUseCase,
		updateTransactionUseCase, deleteTransactionUseCase, exportTransactionsUseCase,
		fileStorage, cfg.Server.BaseURL)
	outcomeController := newTransactionController(entity.KindOutcome,
		createTransactionUseCase, listTransactionsUseCase, getTransactionUseCase,
		updateTransactionUseCase, deleteTransactionUseCase, exportTransactionsUseCase,
		fileStorage, cfg.Server.BaseURL)

	summaryController := controller.NewSummaryController(
		getTotalSummaryUseCase,
		getCountSummaryUseCase,
		getDailyChartUseCase,
		getTopItemsUseCase,
		getLatestActivityUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		incomeItemController,
		outcomeItemController,
		incomeController,
		outcomeController,
		summaryController,
		loginRateLimiter,
		authMiddleware,
		cfg.Storage.UploadDir,
	)

	return &Injector{
		Config: cfg,
		DB:     gormDB,
		Router: r,
	}, nil
}

func newTransactionController(
	kind entity.TransactionKind,
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
	fileStorage adapter.FileStorage,
	baseURL string,
) *controller.TransactionController {
	return controller.NewTransactionController(
		kind,
		createUseCase,
		listUseCase,
		getUseCase,
		updateUseCase,
		deleteUseCase,
		exportUseCase,
		fileStorage,
		baseURL,
	)
}
