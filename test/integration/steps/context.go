// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hexapixel/backend/config"
	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/application/usecase/auth"
	"github.com/hexapixel/backend/internal/application/usecase/item"
	"github.com/hexapixel/backend/internal/application/usecase/summary"
	"github.com/hexapixel/backend/internal/application/usecase/transaction"
	"github.com/hexapixel/backend/internal/application/usecase/user"
	"github.com/hexapixel/backend/internal/domain/entity"
	"github.com/hexapixel/backend/internal/infra/server/router"
	"github.com/hexapixel/backend/internal/infra/storage"
	"github.com/hexapixel/backend/internal/integration/adapters"
	"github.com/hexapixel/backend/internal/integration/entrypoint/controller"
	"github.com/hexapixel/backend/internal/integration/entrypoint/middleware"
	"github.com/hexapixel/backend/internal/integration/persistence"
	"github.com/hexapixel/backend/internal/integration/persistence/model"
	"github.com/hexapixel/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the per-scenario state: an in-process server over a fresh
// database, the last response, and IDs captured while seeding.
type testContext struct {
	server   *httptest.Server
	client   *http.Client
	response *http.Response
	body     []byte

	userRepo        adapter.UserRepository
	itemRepo        adapter.ItemRepository
	transactionRepo adapter.TransactionRepository
	passwordService adapter.PasswordService

	accessToken       string
	currentUserID     uuid.UUID
	currentItemID     uuid.UUID
	currentRecordID   uuid.UUID
	placeholderValues map[string]string
}

// newTestContext wires the full application stack against in-memory stores
// and starts an HTTP server around it.
func newTestContext() *testContext {
	gin.SetMode(gin.TestMode)
	_ = os.Setenv("ENV", "test")

	db := mock.NewDb(
		&model.UserModel{},
		&model.ItemModel{},
		&model.TransactionModel{},
	)
	redisClient := mock.NewRedis()

	uploadDir, err := os.MkdirTemp("", "hexapixel-uploads-")
	if err != nil {
		panic(err)
	}
	fileStorage, err := storage.NewLocalStorage(uploadDir)
	if err != nil {
		panic(err)
	}

	userRepo := persistence.NewUserRepository(db)
	itemRepo := persistence.NewItemRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	summaryRepo := persistence.NewSummaryRepository(db)
	sessionStore := persistence.NewSessionStore(redisClient)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour, sessionStore)
	excelExporter := adapters.NewExcelExporter()

	cfg := config.Load()
	baseURL := cfg.Server.BaseURL
	loc := time.UTC

	authController := controller.NewAuthController(
		auth.NewRegisterSuperAdminUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLogoutUserUseCase(tokenService),
		auth.NewChangePasswordUseCase(userRepo, passwordService),
	)

	userController := controller.NewUserController(
		user.NewCreateUserUseCase(userRepo, passwordService),
		user.NewListUsersUseCase(userRepo),
		user.NewGetUserUseCase(userRepo),
		user.NewUpdateUserUseCase(userRepo),
		user.NewDeleteUserUseCase(userRepo),
		user.NewResetPasswordUseCase(userRepo, passwordService),
		fileStorage,
		baseURL,
	)

	createItemUseCase := item.NewCreateItemUseCase(itemRepo)
	listItemsUseCase := item.NewListItemsUseCase(itemRepo)
	updateItemUseCase := item.NewUpdateItemUseCase(itemRepo)
	deleteItemUseCase := item.NewDeleteItemUseCase(itemRepo)

	incomeItemController := controller.NewItemController(
		entity.KindIncome, createItemUseCase, listItemsUseCase, updateItemUseCase, deleteItemUseCase)
	outcomeItemController := controller.NewItemController(
		entity.KindOutcome, createItemUseCase, listItemsUseCase, updateItemUseCase, deleteItemUseCase)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, itemRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, itemRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo, excelExporter, loc)

	incomeController := controller.NewTransactionController(
		entity.KindIncome, createTransactionUseCase, listTransactionsUseCase, getTransactionUseCase,
		updateTransactionUseCase, deleteTransactionUseCase, exportTransactionsUseCase, fileStorage, baseURL)
	outcomeController := controller.NewTransactionController(
		entity.KindOutcome, createTransactionUseCase, listTransactionsUseCase, getTransactionUseCase,
		updateTransactionUseCase, deleteTransactionUseCase, exportTransactionsUseCase, fileStorage, baseURL)

	summaryController := controller.NewSummaryController(
		summary.NewGetTotalSummaryUseCase(summaryRepo, loc),
		summary.NewGetCountSummaryUseCase(summaryRepo, loc),
		summary.NewGetDailyChartUseCase(summaryRepo, loc),
		summary.NewGetTopItemsUseCase(summaryRepo, loc),
		summary.NewGetLatestActivityUseCase(summaryRepo),
	)

	r := router.NewRouter(
		controller.NewHealthController(func() bool { return true }),
		authController,
		userController,
		incomeItemController,
		outcomeItemController,
		incomeController,
		outcomeController,
		summaryController,
		middleware.NewRateLimiterWithConfig(1000, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
		uploadDir,
	)
	engine := r.Setup("test")

	return &testContext{
		server:            httptest.NewServer(engine),
		client:            &http.Client{Timeout: 10 * time.Second},
		userRepo:          userRepo,
		itemRepo:          itemRepo,
		transactionRepo:   transactionRepo,
		passwordService:   passwordService,
		placeholderValues: make(map[string]string),
	}
}

// close shuts the per-scenario server down.
func (tc *testContext) close() {
	if tc.server != nil {
		tc.server.Close()
	}
}

// seedUser creates a user directly in the store, bypassing the API.
func (tc *testContext) seedUser(username, password, fullName string, role entity.UserRole) (*entity.User, error) {
	hash, err := tc.passwordService.Hash(password)
	if err != nil {
		return nil, err
	}
	seeded := entity.NewUser(username, hash, fullName, role, "", "")
	if err := tc.userRepo.Create(context.Background(), seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}
