package router

import (
	"github.com/Anuradha-Herath/FinTrack/internal/config"
	"github.com/Anuradha-Herath/FinTrack/internal/handler"
	"github.com/Anuradha-Herath/FinTrack/internal/middleware"
	"github.com/Anuradha-Herath/FinTrack/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services, handlers and middleware onto a Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	transactionService := service.NewTransactionService(db)
	accountService := service.NewAccountService(db)
	budgetService := service.NewBudgetService(db)
	goalService := service.NewGoalService(db)
	reportService := service.NewReportService(db)

	api := r.Group("/api")

	// auth endpoints do not require a token
	authHandler := handler.NewAuthHandler(authService)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	transactionHandler := handler.NewTransactionHandler(transactionService)
	protected.POST("/transactions", transactionHandler.Create)
	protected.GET("/transactions", transactionHandler.List)
	protected.GET("/transactions/summary", transactionHandler.Summary)
	protected.PUT("/transactions/:id", transactionHandler.Update)
	protected.DELETE("/transactions/:id", transactionHandler.Delete)

	exportHandler := handler.NewExportHandler(transactionService)
	protected.GET("/transactions/export/csv", exportHandler.ExportCSV)
	protected.GET("/transactions/export/xlsx", exportHandler.ExportXLSX)

	accountHandler := handler.NewAccountHandler(accountService)
	protected.POST("/accounts", accountHandler.Create)
	protected.GET("/accounts", accountHandler.List)
	protected.GET("/accounts/:id", accountHandler.Get)
	protected.PUT("/accounts/:id", accountHandler.Update)
	protected.DELETE("/accounts/:id", accountHandler.Delete)

	budgetHandler := handler.NewBudgetHandler(budgetService)
	protected.POST("/budgets", budgetHandler.Create)
	protected.GET("/budgets", budgetHandler.List)
	protected.GET("/budgets/:id", budgetHandler.Get)
	protected.PUT("/budgets/:id", budgetHandler.Update)
	protected.DELETE("/budgets/:id", budgetHandler.Delete)

	goalHandler := handler.NewGoalHandler(goalService)
	protected.POST("/goals", goalHandler.Create)
	protected.GET("/goals", goalHandler.List)
	protected.GET("/goals/:id", goalHandler.Get)
	protected.PUT("/goals/:id", goalHandler.Update)
	protected.POST("/goals/:id/add", goalHandler.AddAmount)
	protected.DELETE("/goals/:id", goalHandler.Delete)

	reportHandler := handler.NewReportHandler(reportService)
	protected.GET("/reports/summary", reportHandler.Summary)
	protected.GET("/reports/expenses-by-category", reportHandler.ExpensesByCategory)
	protected.GET("/reports/income-vs-expense-trend", reportHandler.IncomeVsExpenseTrend)

	profileHandler := handler.NewProfileHandler(authService, cfg.Upload.Dir)
	protected.GET("/profile", profileHandler.Get)
	protected.PUT("/profile", profileHandler.Update)
	protected.PUT("/profile/password", profileHandler.ChangePassword)
	protected.POST("/profile/picture", profileHandler.UploadPicture)

	auditHandler := handler.NewAuditHandler(db, cfg.App.PageSize)
	protected.GET("/logs", auditHandler.List)

	return r
}
