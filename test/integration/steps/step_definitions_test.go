package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/application/usecase/auth"
	"github.com/coliving-manager/backend/internal/application/usecase/expense"
	"github.com/coliving-manager/backend/internal/application/usecase/lease"
	"github.com/coliving-manager/backend/internal/application/usecase/payment"
	"github.com/coliving-manager/backend/internal/application/usecase/property"
	"github.com/coliving-manager/backend/internal/application/usecase/report"
	"github.com/coliving-manager/backend/internal/application/usecase/task"
	"github.com/coliving-manager/backend/internal/application/usecase/tenant"
	"github.com/coliving-manager/backend/internal/infra/server/router"
	"github.com/coliving-manager/backend/internal/integration/adapters"
	"github.com/coliving-manager/backend/internal/integration/cache"
	"github.com/coliving-manager/backend/internal/integration/email"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/controller"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/coliving-manager/backend/internal/integration/persistence"
	"github.com/coliving-manager/backend/internal/integration/persistence/model"
	"github.com/coliving-manager/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	serverPort    int
	accessToken   string
	refreshToken  string
	resetToken    string
	expiredToken  string
	currentUserID uuid.UUID
	propertyID    uuid.UUID
	roomID        uuid.UUID
	tenantID      uuid.UUID
	leaseID       uuid.UUID
	paymentID     uuid.UUID
	expenseID     uuid.UUID
	taskID        uuid.UUID
	lastID        uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("coliving_manager", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"properties":            &model.PropertyModel{},
			"rooms":                 &model.RoomModel{},
			"tenants":               &model.TenantModel{},
			"leases":                &model.LeaseModel{},
			"payments":              &model.PaymentModel{},
			"expenses":              &model.ExpenseModel{},
			"tasks":                 &model.TaskModel{},
			"email_queue":           &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return ctx, nil
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Step(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Step(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Step(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Portfolio setup steps
	ctx.Step(`^a property exists with name "([^"]*)"$`, test.aPropertyExistsWithName)
	ctx.Step(`^a room exists with name "([^"]*)" and rent "([^"]*)"$`, test.aRoomExistsWithNameAndRent)
	ctx.Step(`^a tenant exists with name "([^"]*)"$`, test.aTenantExistsWithName)
	ctx.Step(`^an active lease exists with monthly rent "([^"]*)"$`, test.anActiveLeaseExistsWithMonthlyRent)
	ctx.Step(`^a completed "([^"]*)" payment of "([^"]*)" exists on "([^"]*)"$`, test.aCompletedPaymentExistsOn)
	ctx.Step(`^a pending "([^"]*)" payment of "([^"]*)" exists on "([^"]*)"$`, test.aPendingPaymentExistsOn)
	ctx.Step(`^an expense of "([^"]*)" in category "([^"]*)" exists on "([^"]*)"$`, test.anExpenseExistsOn)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.propertyID = uuid.Nil
	t.roomID = uuid.Nil
	t.tenantID = uuid.Nil
	t.leaseID = uuid.Nil
	t.paymentID = uuid.Nil
	t.expenseID = uuid.Nil
	t.taskID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			propertyRepo := persistence.NewPropertyRepository(testDB.DbConn)
			roomRepo := persistence.NewRoomRepository(testDB.DbConn)
			tenantRepo := persistence.NewTenantRepository(testDB.DbConn)
			leaseRepo := persistence.NewLeaseRepository(testDB.DbConn)
			paymentRepo := persistence.NewPaymentRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			taskRepo := persistence.NewTaskRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)
			reportRepo := persistence.NewReportRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			categorySuggester := adapters.NewGeminiService("")
			emailService := email.NewService(emailQueueRepo, "http://localhost:5173")
			reportCache := cache.NewReportCache(mock.NewRedis())

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, "http://localhost:5173")
			resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
			deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

			// Create property use cases
			createPropertyUseCase := property.NewCreatePropertyUseCase(propertyRepo)
			listPropertiesUseCase := property.NewListPropertiesUseCase(propertyRepo)
			getPropertyUseCase := property.NewGetPropertyUseCase(propertyRepo, roomRepo)
			updatePropertyUseCase := property.NewUpdatePropertyUseCase(propertyRepo)
			deletePropertyUseCase := property.NewDeletePropertyUseCase(propertyRepo)
			createRoomUseCase := property.NewCreateRoomUseCase(propertyRepo, roomRepo)
			updateRoomUseCase := property.NewUpdateRoomUseCase(propertyRepo, roomRepo)
			deleteRoomUseCase := property.NewDeleteRoomUseCase(propertyRepo, roomRepo)

			// Create tenant use cases
			createTenantUseCase := tenant.NewCreateTenantUseCase(tenantRepo)
			listTenantsUseCase := tenant.NewListTenantsUseCase(tenantRepo)
			updateTenantUseCase := tenant.NewUpdateTenantUseCase(tenantRepo)
			archiveTenantUseCase := tenant.NewArchiveTenantUseCase(tenantRepo)

			// Create lease use cases
			createLeaseUseCase := lease.NewCreateLeaseUseCase(leaseRepo, propertyRepo, roomRepo, tenantRepo)
			listLeasesUseCase := lease.NewListLeasesUseCase(leaseRepo)
			listExpiringLeasesUseCase := lease.NewListExpiringLeasesUseCase(leaseRepo)
			terminateLeaseUseCase := lease.NewTerminateLeaseUseCase(leaseRepo, roomRepo)

			// Create payment use cases
			recordPaymentUseCase := payment.NewRecordPaymentUseCase(paymentRepo, propertyRepo, tenantRepo, emailService)
			listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo)
			updatePaymentStatusUseCase := payment.NewUpdatePaymentStatusUseCase(paymentRepo, propertyRepo, tenantRepo, emailService)
			deletePaymentUseCase := payment.NewDeletePaymentUseCase(paymentRepo)

			// Create expense use cases
			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, propertyRepo)
			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
			updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
			deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
			suggestCategoryUseCase := expense.NewSuggestCategoryUseCase(categorySuggester)

			// Create task use cases
			createTaskUseCase := task.NewCreateTaskUseCase(taskRepo)
			listTasksUseCase := task.NewListTasksUseCase(taskRepo)
			updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
			deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)

			// Create report use cases
			financialReportUseCase := report.NewGenerateFinancialReportUseCase(reportRepo)
			profitLossUseCase := report.NewGenerateProfitLossStatementUseCase(reportRepo)
			cashFlowUseCase := report.NewGenerateCashFlowAnalysisUseCase(reportRepo)
			taxSummaryUseCase := report.NewGenerateTaxSummaryUseCase(reportRepo, decimal.NewFromInt(50000))

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)

			userController := controller.NewUserController(deleteAccountUseCase)

			propertyController := controller.NewPropertyController(
				createPropertyUseCase,
				getPropertyUseCase,
				listPropertiesUseCase,
				updatePropertyUseCase,
				deletePropertyUseCase,
				createRoomUseCase,
				updateRoomUseCase,
				deleteRoomUseCase,
			)

			tenantController := controller.NewTenantController(
				createTenantUseCase,
				listTenantsUseCase,
				updateTenantUseCase,
				archiveTenantUseCase,
			)

			leaseController := controller.NewLeaseController(
				createLeaseUseCase,
				listLeasesUseCase,
				terminateLeaseUseCase,
				listExpiringLeasesUseCase,
			)

			paymentController := controller.NewPaymentController(
				recordPaymentUseCase,
				listPaymentsUseCase,
				updatePaymentStatusUseCase,
				deletePaymentUseCase,
				reportCache,
			)

			expenseController := controller.NewExpenseController(
				createExpenseUseCase,
				listExpensesUseCase,
				updateExpenseUseCase,
				deleteExpenseUseCase,
				suggestCategoryUseCase,
				reportCache,
			)

			taskController := controller.NewTaskController(
				createTaskUseCase,
				listTasksUseCase,
				updateTaskUseCase,
				deleteTaskUseCase,
			)

			reportController := controller.NewReportController(
				financialReportUseCase,
				profitLossUseCase,
				cashFlowUseCase,
				taxSummaryUseCase,
				reportCache,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				propertyController,
				tenantController,
				leaseController,
				paymentController,
				expenseController,
				taskController,
				reportController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		EmailNotifications: true,
		RentReminders:      true,
		TaskAlerts:         true,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "coliving-manager",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "coliving-manager",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

// iAmLoggedInAs creates the user when needed and switches the current
// session to them.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", "Test User "+email); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found: %w", err)
		}
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(userModel.ID, email)
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) aPropertyExistsWithName(name string) error {
	propertyID := uuid.New()
	t.propertyID = propertyID

	now := time.Now().UTC()
	propertyModel := &model.PropertyModel{
		ID:        propertyID,
		UserID:    t.currentUserID,
		Name:      name,
		Address:   "1 Test Street",
		City:      "Lisbon",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(propertyModel)
	return result.Error
}

func (t *testContext) aRoomExistsWithNameAndRent(name, rent string) error {
	monthlyRent, err := decimal.NewFromString(rent)
	if err != nil {
		return fmt.Errorf("invalid rent '%s': %w", rent, err)
	}

	roomID := uuid.New()
	t.roomID = roomID

	now := time.Now().UTC()
	roomModel := &model.RoomModel{
		ID:          roomID,
		PropertyID:  t.propertyID,
		Name:        name,
		MonthlyRent: monthlyRent,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(roomModel)
	return result.Error
}

func (t *testContext) aTenantExistsWithName(name string) error {
	tenantID := uuid.New()
	t.tenantID = tenantID

	now := time.Now().UTC()
	propertyID := t.propertyID
	tenantModel := &model.TenantModel{
		ID:        tenantID,
		UserID:    t.currentUserID,
		FullName:  name,
		Email:     "tenant@example.com",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if propertyID != uuid.Nil {
		tenantModel.PropertyID = &propertyID
	}

	result := t.db.DbConn.Create(tenantModel)
	return result.Error
}

func (t *testContext) anActiveLeaseExistsWithMonthlyRent(rent string) error {
	monthlyRent, err := decimal.NewFromString(rent)
	if err != nil {
		return fmt.Errorf("invalid rent '%s': %w", rent, err)
	}

	leaseID := uuid.New()
	t.leaseID = leaseID

	now := time.Now().UTC()
	leaseModel := &model.LeaseModel{
		ID:            leaseID,
		UserID:        t.currentUserID,
		PropertyID:    t.propertyID,
		TenantID:      t.tenantID,
		StartDate:     now.AddDate(0, -1, 0),
		EndDate:       now.AddDate(1, 0, 0),
		MonthlyRent:   monthlyRent,
		DepositAmount: monthlyRent,
		RentDueDay:    1,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if t.roomID != uuid.Nil {
		roomID := t.roomID
		leaseModel.RoomID = &roomID
	}

	result := t.db.DbConn.Create(leaseModel)
	return result.Error
}

func (t *testContext) aCompletedPaymentExistsOn(paymentType, amount, date string) error {
	return t.createPayment(paymentType, amount, date, "completed")
}

func (t *testContext) aPendingPaymentExistsOn(paymentType, amount, date string) error {
	return t.createPayment(paymentType, amount, date, "pending")
}

func (t *testContext) createPayment(paymentType, amount, date, status string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	paymentDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	paymentID := uuid.New()
	t.paymentID = paymentID

	now := time.Now().UTC()
	paymentModel := &model.PaymentModel{
		ID:         paymentID,
		UserID:     t.currentUserID,
		PropertyID: t.propertyID,
		Amount:     value,
		Date:       paymentDate,
		Type:       paymentType,
		Status:     status,
		Method:     "bank_transfer",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if t.tenantID != uuid.Nil {
		tenantID := t.tenantID
		paymentModel.TenantID = &tenantID
	}

	result := t.db.DbConn.Create(paymentModel)
	return result.Error
}

func (t *testContext) anExpenseExistsOn(amount, category, date string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	expenseDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	expenseID := uuid.New()
	t.expenseID = expenseID

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:          expenseID,
		UserID:      t.currentUserID,
		PropertyID:  t.propertyID,
		Amount:      value,
		Date:        expenseDate,
		Category:    category,
		Description: "Test expense",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(expenseModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{property_id}}", t.propertyID.String())
	content = strings.ReplaceAll(content, "{{room_id}}", t.roomID.String())
	content = strings.ReplaceAll(content, "{{tenant_id}}", t.tenantID.String())
	content = strings.ReplaceAll(content, "{{lease_id}}", t.leaseID.String())
	content = strings.ReplaceAll(content, "{{payment_id}}", t.paymentID.String())
	content = strings.ReplaceAll(content, "{{expense_id}}", t.expenseID.String())
	content = strings.ReplaceAll(content, "{{task_id}}", t.taskID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the created resource ID for later placeholders
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
