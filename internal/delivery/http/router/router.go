// Package router contains routing setup for the HTTP delivery.
package router

import (
	"dealerdesk/internal/delivery/http/middleware"
	"dealerdesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	AccountingHandler *handler.AccountingHandler
	SalesHandler      *handler.SalesHandler
	ProfileHandler    *handler.ProfileHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	HRHandler         *handler.HRHandler
	InventoryHandler  *handler.InventoryHandler
	GuardMiddleware   *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	accountingHandler *handler.AccountingHandler
	salesHandler      *handler.SalesHandler
	profileHandler    *handler.ProfileHandler
	analyticsHandler  *handler.AnalyticsHandler
	hrHandler         *handler.HRHandler
	inventoryHandler  *handler.InventoryHandler
	guardMiddleware   *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		accountingHandler: params.AccountingHandler,
		salesHandler:      params.SalesHandler,
		profileHandler:    params.ProfileHandler,
		analyticsHandler:  params.AnalyticsHandler,
		hrHandler:         params.HRHandler,
		inventoryHandler:  params.InventoryHandler,
		guardMiddleware:   params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the routes of the console.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session lifecycle routes. These run without the guard: sign-in and
	// refresh must work with no session, and /api/me reports absence itself.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signin", r.sessionHandler.SignIn)
	}

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/me", r.sessionHandler.Me)
		apiGroup.POST("/token", r.sessionHandler.RefreshToken)
		apiGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// Everything below requires an authenticated session.
	guarded := e.Group("", r.guardMiddleware.Guard)

	accountingGroup := guarded.Group("/accounting")
	{
		accountingGroup.GET("/expenses", r.accountingHandler.ListExpenses)
		accountingGroup.POST("/expenses", r.accountingHandler.CreateExpense)
		accountingGroup.PATCH("/expenses/:id", r.accountingHandler.UpdateExpense)
		accountingGroup.DELETE("/expenses/:id", r.accountingHandler.DeleteExpense)

		accountingGroup.GET("/car-expenses", r.accountingHandler.ListCarExpenses)
		accountingGroup.POST("/car-expenses", r.accountingHandler.CreateCarExpense)
		accountingGroup.PATCH("/car-expenses/:id", r.accountingHandler.UpdateCarExpense)
		accountingGroup.DELETE("/car-expenses/:id", r.accountingHandler.DeleteCarExpense)

		accountingGroup.GET("/revenues", r.accountingHandler.ListRevenues)
		accountingGroup.POST("/revenues", r.accountingHandler.CreateRevenue)
		accountingGroup.PATCH("/revenues/:id", r.accountingHandler.UpdateRevenue)
		accountingGroup.DELETE("/revenues/:id", r.accountingHandler.DeleteRevenue)

		accountingGroup.GET("/exchange-rates", r.accountingHandler.ListExchangeRates)
		accountingGroup.POST("/exchange-rates", r.accountingHandler.CreateExchangeRate)
		accountingGroup.PATCH("/exchange-rates/:id", r.accountingHandler.UpdateExchangeRate)
		accountingGroup.DELETE("/exchange-rates/:id", r.accountingHandler.DeleteExchangeRate)

		accountingGroup.GET("/financial-reports", r.accountingHandler.ListFinancialReports)
		accountingGroup.POST("/financial-reports", r.accountingHandler.CreateFinancialReport)
		accountingGroup.POST("/financial-reports/generate", r.accountingHandler.GenerateFinancialReport)
		accountingGroup.PATCH("/financial-reports/:id", r.accountingHandler.UpdateFinancialReport)
		accountingGroup.DELETE("/financial-reports/:id", r.accountingHandler.DeleteFinancialReport)

		accountingGroup.GET("/summary", r.accountingHandler.Summary)
	}

	salesGroup := guarded.Group("/sales")
	{
		salesGroup.GET("", r.salesHandler.ListSales)
		salesGroup.POST("", r.salesHandler.CreateSale)
		salesGroup.PATCH("/:id", r.salesHandler.UpdateSale)
		salesGroup.DELETE("/:id", r.salesHandler.DeleteSale)

		salesGroup.GET("/leads", r.salesHandler.ListLeads)
		salesGroup.POST("/leads", r.salesHandler.CreateLead)
		salesGroup.PATCH("/leads/:id", r.salesHandler.UpdateLead)
		salesGroup.DELETE("/leads/:id", r.salesHandler.DeleteLead)
	}

	dealersGroup := guarded.Group("/dealers")
	{
		dealersGroup.GET("/me", r.profileHandler.GetDealer)
		dealersGroup.PATCH("/me", r.profileHandler.UpdateDealer)

		dealersGroup.GET("/staff", r.hrHandler.ListStaff)
		dealersGroup.POST("/staff", r.hrHandler.CreateStaff)
		dealersGroup.PATCH("/staff/:id", r.hrHandler.UpdateStaff)
		dealersGroup.DELETE("/staff/:id", r.hrHandler.DeleteStaff)

		dealersGroup.GET("/top-sellers", r.analyticsHandler.TopSellers)
		dealersGroup.GET("/high-sale-cars", r.analyticsHandler.HighSaleCars)
	}

	hrGroup := guarded.Group("/hr")
	{
		hrGroup.GET("/attendances", r.hrHandler.ListAttendances)
		hrGroup.POST("/attendances", r.hrHandler.CreateAttendance)
		hrGroup.PATCH("/attendances/:id", r.hrHandler.UpdateAttendance)
		hrGroup.DELETE("/attendances/:id", r.hrHandler.DeleteAttendance)

		hrGroup.GET("/contracts", r.hrHandler.ListContracts)
		hrGroup.POST("/contracts", r.hrHandler.CreateContract)
		hrGroup.PATCH("/contracts/:id", r.hrHandler.UpdateContract)
		hrGroup.DELETE("/contracts/:id", r.hrHandler.DeleteContract)
	}

	inventoryGroup := guarded.Group("/inventory")
	{
		inventoryGroup.GET("/cars", r.inventoryHandler.ListCars)
		inventoryGroup.POST("/cars", r.inventoryHandler.PostCar)
		inventoryGroup.GET("/cars/dealer-analytics", r.analyticsHandler.DealerAnalytics)
		inventoryGroup.GET("/cars/:id", r.inventoryHandler.GetCar)

		inventoryGroup.GET("/makes", r.inventoryHandler.ListMakes)
		inventoryGroup.GET("/models", r.inventoryHandler.ListModels)

		inventoryGroup.GET("/car-views/dealer-analytics", r.analyticsHandler.CarViews)
	}
}
