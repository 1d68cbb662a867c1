// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/config"
	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/application/usecase/auth"
	"github.com/coliving-manager/backend/internal/application/usecase/expense"
	"github.com/coliving-manager/backend/internal/application/usecase/lease"
	"github.com/coliving-manager/backend/internal/application/usecase/payment"
	"github.com/coliving-manager/backend/internal/application/usecase/property"
	"github.com/coliving-manager/backend/internal/application/usecase/reminder"
	"github.com/coliving-manager/backend/internal/application/usecase/report"
	"github.com/coliving-manager/backend/internal/application/usecase/task"
	"github.com/coliving-manager/backend/internal/application/usecase/tenant"
	"github.com/coliving-manager/backend/internal/infra/server/router"
	"github.com/coliving-manager/backend/internal/integration/adapters"
	"github.com/coliving-manager/backend/internal/integration/cache"
	"github.com/coliving-manager/backend/internal/integration/email"
	"github.com/coliving-manager/backend/internal/integration/email/templates"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/controller"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/coliving-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	EmailQueue  adapter.EmailQueueRepository
	Reminders   *reminder.SendRemindersUseCase
}

// NewInjector creates a new dependency injector with all dependencies
// wired. The redis client may be nil, in which case report caching is
// disabled and every report request hits the database.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	propertyRepo := persistence.NewPropertyRepository(db)
	roomRepo := persistence.NewRoomRepository(db)
	tenantRepo := persistence.NewTenantRepository(db)
	leaseRepo := persistence.NewLeaseRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	categorySuggester := adapters.NewGeminiService(cfg.Gemini.APIKey)

	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	reportCache := cache.NewReportCacheWithTTL(redisClient, cfg.Reporting.CacheTTL)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
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
	taxSummaryUseCase := report.NewGenerateTaxSummaryUseCase(reportRepo, decimal.NewFromFloat(cfg.Reporting.HighIncomeThreshold))

	// Create reminder sweep
	sendRemindersUseCase := reminder.NewSendRemindersUseCase(leaseRepo, tenantRepo, propertyRepo, roomRepo, userRepo, emailService)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailSender := newEmailSender(cfg)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

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
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
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

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		EmailQueue:  emailQueueRepo,
		Reminders:   sendRemindersUseCase,
	}, nil
}

// newEmailSender picks the Resend client when an API key is configured
// and falls back to the logging mock sender otherwise, so development
// environments work without credentials.
func newEmailSender(cfg *config.Config) adapter.EmailSender {
	if cfg.Email.ResendAPIKey == "" {
		return email.NewMockEmailSender()
	}
	return email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
}
