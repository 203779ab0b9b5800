package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/server/handlers"
)

// Handlers bundles every resource handler the router wires.
type Handlers struct {
	Suppliers   *handlers.SupplierHandler
	Collections *handlers.CollectionHandler
	Evaluations *handlers.EvaluationHandler
	Inventory   *handlers.InventoryHandler
	Payments    *handlers.PaymentHandler
	Finance     *handlers.FinanceHandler
	Exports     *handlers.ExportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/suppliers", h.Suppliers.List)
	r.POST("/suppliers", h.Suppliers.Create)

	r.GET("/collection-sessions", h.Collections.List)
	r.POST("/collection-sessions", h.Collections.Create)

	r.GET("/site-evaluation-reports", h.Evaluations.List)
	r.POST("/site-evaluation-reports", h.Evaluations.Create)

	r.GET("/inventory", h.Inventory.List)
	r.POST("/inventory", h.Inventory.Collect)
	r.GET("/last-inventory", h.Inventory.Latest)
	r.POST("/sorting", h.Inventory.Sort)
	r.GET("/inventorysell", h.Inventory.Sales)
	r.POST("/inventorysell", h.Inventory.Sell)

	r.GET("/api/mamas/payments", h.Payments.Report)
	r.POST("/api/mamas/entries", h.Payments.RecordEntry)

	r.GET("/bank-accounts", h.Finance.Accounts)
	r.POST("/bank-accounts", h.Finance.CreateAccount)
	r.GET("/finance/summary", h.Finance.Summary)
	r.GET("/dashboard/summary", h.Finance.Dashboard)

	r.GET("/exports/payments.csv", h.Exports.PaymentsCSV)
	r.GET("/exports/payments.xlsx", h.Exports.PaymentsXLSX)
	r.POST("/exports/payments/sheets", h.Exports.PublishPayments)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
